package logio

import "golang.org/x/term"

// IsTerminal returns true if w is a file descriptor attached to a terminal.
func IsTerminal(w interface{}) bool {
	if fd, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fd.Fd()))
	}
	return false
}

// ParseFormat maps "auto", "text" or "json" to a Format.
func ParseFormat(name string) (Format, bool) {
	switch name {
	case "", "auto":
		return FormatAuto, true
	case "text":
		return FormatText, true
	case "json":
		return FormatJSON, true
	}
	return FormatAuto, false
}
