package runeio

import (
	"strings"
	"unicode/utf8"
)

// CaretForm computes the ^-escaped printable form of a C0 control rune, or
// the ^[-escaped form of a C1 control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Caret returns s with every control rune replaced by its caret form, and
// every invalid utf8 byte by the replacement character; it returns s itself
// when nothing needs escaping.
func Caret(s string) string {
	i := strings.IndexFunc(s, needsEscape)
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s[:i])
	for _, r := range s[i:] {
		if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func needsEscape(r rune) bool {
	return r == utf8.RuneError || CaretForm(r) != ""
}
