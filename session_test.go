package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/brackish/internal/fileinput"
	"github.com/jcorbin/brackish/internal/logio"
)

// scriptSource replays lines, recording the prompt offered before each read.
type scriptSource struct {
	lines   []string
	prompts []string
	closed  bool
	err     error
}

func (ss *scriptSource) ReadLine(prompt string) (fileinput.Line, error) {
	ss.prompts = append(ss.prompts, prompt)
	if len(ss.lines) == 0 {
		if ss.err != nil {
			return fileinput.Line{}, ss.err
		}
		return fileinput.Line{}, io.EOF
	}
	n := len(ss.prompts)
	text := ss.lines[0]
	ss.lines = ss.lines[1:]
	return fileinput.Line{
		Location: fileinput.Location{Name: "script", Line: n},
		Text:     text,
	}, nil
}

func (ss *scriptSource) Close() error {
	ss.closed = true
	return nil
}

func runSession(t *testing.T, src *scriptSource) (*session, *logio.Recorder, string, error) {
	var (
		rec logio.Recorder
		out strings.Builder
	)
	s := &session{
		in:             New(WithSink(&rec), WithOutput(&out)),
		src:            src,
		log:            &rec,
		out:            &out,
		prompt:         "> ",
		continuePrompt: ". ",
	}
	err := s.run(context.Background())
	return s, &rec, out.String(), err
}

func TestSession(t *testing.T) {
	src := &scriptSource{lines: []string{
		"1 2",
		"[ 3",
		"4 ]",
		"+",
	}}
	s, rec, out, err := runSession(t, src)
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(1), Number(2), Number(7)}, s.in.Stack())
	assert.Equal(t, []string{"> ", "> ", ". ", "> ", "> "}, src.prompts,
		"expected continuation prompt inside a context")
	assert.Equal(t, "[1 2]\n[1 2 3 4]\n[1 2 7]\n", out)
	assert.Empty(t, rec.Messages(logio.LevelError))
}

func TestSession_meta(t *testing.T) {
	src := &scriptSource{lines: []string{
		"1 ]",
		"2",
		":reset",
		"2",
		" :quit ",
		"3",
	}}
	s, rec, _, err := runSession(t, src)
	require.NoError(t, err, "expected quit to end the session cleanly")
	assert.Equal(t, []Value{Number(2)}, s.in.Stack())
	assert.Equal(t, Outside, s.in.State())
	assert.Equal(t, []string{"3"}, src.lines, "expected no reads after quit")
	assert.Contains(t, rec.Messages(logio.LevelError), "unbalanced close, state invalid")
}

func TestSession_dump(t *testing.T) {
	src := &scriptSource{lines: []string{"fn sq [ 'x $ 'x $ * ]", ":dump"}}
	_, _, out, err := runSession(t, src)
	require.NoError(t, err)
	assert.Contains(t, out, "# Interpreter Dump\n")
	assert.Contains(t, out, "# Macros (1)\n  fn sq ['x $ 'x $ *]\n")
}

func TestSession_openContext(t *testing.T) {
	src := &scriptSource{lines: []string{"[ 1"}}
	_, rec, _, err := runSession(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"input ended inside open context"}, rec.Messages(logio.LevelError))
}

func TestSession_readError(t *testing.T) {
	boom := errors.New("boom")
	src := &scriptSource{lines: []string{"1"}, err: boom}
	s, _, _, err := runSession(t, src)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []Value{Number(1)}, s.in.Stack())
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (ct *closeTracker) Close() error {
	ct.closed = true
	return nil
}

func TestSession_fileSourceClose(t *testing.T) {
	prelude := &closeTracker{Reader: strings.NewReader("1\n:quit\n2\n")}
	rest := &closeTracker{Reader: strings.NewReader("3\n")}
	src := &fileSource{fileinput.Input{Queue: []io.Reader{prelude, rest}}}

	var rec logio.Recorder
	s := &session{
		in:     New(WithSink(&rec)),
		src:    src,
		log:    &rec,
		out:    io.Discard,
		prompt: "> ",
	}
	require.NoError(t, s.run(context.Background()))
	assert.Equal(t, []Value{Number(1)}, s.in.Stack())
	assert.False(t, rest.closed, "expected queued input to be unread")

	require.NoError(t, src.Close())
	assert.True(t, prelude.closed, "expected current input closed")
	assert.True(t, rest.closed, "expected queued input closed")
}
