package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// Closing the returned Reader closes r, if r is an io.Closer.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if cl, ok := r.(io.Closer); ok {
		return closingRuneReader{rr, cl}
	}
	return rr
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type closingRuneReader struct {
	runeReader
	io.Closer
}
