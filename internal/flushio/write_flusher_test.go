package flushio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, Discard, NewWriteFlusher(nil))
	assert.Equal(t, Discard, NewWriteFlusher(io.Discard))

	var buf bytes.Buffer
	assert.Equal(t, nopFlusher{&buf}, NewWriteFlusher(&buf), "buffers need no flushing")

	bw := bufio.NewWriter(&buf)
	assert.Equal(t, WriteFlusher(bw), NewWriteFlusher(bw), "expected passthru")

	_, isBuffered := NewWriteFlusher(os.Stdout).(*bufio.Writer)
	assert.True(t, isBuffered, "expected files to be buffered")
}

func TestWriteLine(t *testing.T) {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	require.NoError(t, WriteLine(bw, "[1 2]"))
	assert.Equal(t, "[1 2]\n", sb.String(), "expected flush after line")
}
