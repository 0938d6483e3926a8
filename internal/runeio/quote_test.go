package runeio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaret(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a\x00b", "a^@b"},
		{"\x1b[", "^[["},
		{"del\x7f", "del^?"},
		{"\u0085", "^[E"},
		{"héllo", "héllo"},
	} {
		assert.Equal(t, tc.out, Caret(tc.in), "Caret(%q)", tc.in)
	}
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error { cc.closed++; return nil }

func TestNewReader(t *testing.T) {
	sr := strings.NewReader("x")
	assert.Equal(t, Reader(sr), NewReader(sr), "expected rune reader passthru")

	cc := &closeCounter{Reader: strings.NewReader("y")}
	rr := NewReader(cc)
	r, _, err := rr.ReadRune()
	assert.NoError(t, err)
	assert.Equal(t, 'y', r)
	if cl, ok := rr.(io.Closer); assert.True(t, ok, "expected closer") {
		assert.NoError(t, cl.Close())
	}
	assert.Equal(t, 1, cc.closed)
}
