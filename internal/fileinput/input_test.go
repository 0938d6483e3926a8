package fileinput

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func TestInput_ReadLine(t *testing.T) {
	in := Input{Queue: []io.Reader{
		namedReader{strings.NewReader("1 2 +\r\n[ a\n"), "prelude.br"},
		namedReader{strings.NewReader("b ]"), "<stdin>"},
	}}

	var got []string
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, line.String())
	}
	assert.Equal(t, []string{
		`prelude.br:1 "1 2 +"`,
		`prelude.br:2 "[ a"`,
		`<stdin>:1 "b ]"`,
	}, got)
	assert.Equal(t, Location{"<stdin>", 1}, in.Last.Location)

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to be sticky")
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error { cc.closed++; return nil }

func TestInput_Close(t *testing.T) {
	a := &closeCounter{Reader: strings.NewReader("1\n2\n")}
	b := &closeCounter{Reader: strings.NewReader("3\n")}
	c := &closeCounter{Reader: strings.NewReader("4\n")}
	in := Input{Queue: []io.Reader{a, b, c}}

	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1", line.Text)

	require.NoError(t, in.Close())
	assert.Equal(t, []int{1, 1, 1}, []int{a.closed, b.closed, c.closed},
		"expected current and queued streams to be closed")

	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
	require.NoError(t, in.Close())
	assert.Equal(t, []int{1, 1, 1}, []int{a.closed, b.closed, c.closed},
		"expected no double close")
}

func TestInput_unnamed(t *testing.T) {
	in := Input{Queue: []io.Reader{strings.NewReader("\n\nx")}}
	var texts []string
	for {
		line, err := in.ReadLine()
		if err != nil {
			require.Equal(t, io.EOF, err)
			break
		}
		texts = append(texts, line.Text)
	}
	assert.Equal(t, []string{"", "", "x"}, texts)
	assert.Equal(t, "<unnamed *strings.Reader>:3", in.Last.Location.String())
}
