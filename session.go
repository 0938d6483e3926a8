package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/brackish/internal/fileinput"
	"github.com/jcorbin/brackish/internal/logio"
)

// lineSource supplies input lines; prompt is only meaningful to interactive
// sources.
type lineSource interface {
	ReadLine(prompt string) (fileinput.Line, error)
	Close() error
}

// fileSource reads lines from a queue of files, then standard input.
type fileSource struct{ fileinput.Input }

func (fs *fileSource) ReadLine(string) (fileinput.Line, error) { return fs.Input.ReadLine() }
func (fs *fileSource) Close() error                           { return fs.Input.Close() }

// termSource reads any prelude files, then prompts on a terminal.
type termSource struct {
	prelude fileinput.Input
	ln      *liner.State
	loc     fileinput.Location
}

func newTermSource(prelude []io.Reader) *termSource {
	ts := &termSource{
		prelude: fileinput.Input{Queue: prelude},
		ln:      liner.NewLiner(),
		loc:     fileinput.Location{Name: "<tty>"},
	}
	ts.ln.SetCtrlCAborts(true)
	return ts
}

func (ts *termSource) ReadLine(prompt string) (fileinput.Line, error) {
	if line, err := ts.prelude.ReadLine(); err != io.EOF {
		return line, err
	}
	text, err := ts.ln.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return fileinput.Line{}, io.EOF
	} else if err != nil {
		return fileinput.Line{}, err
	}
	if strings.TrimSpace(text) != "" {
		ts.ln.AppendHistory(text)
	}
	ts.loc.Line++
	return fileinput.Line{Location: ts.loc, Text: text}, nil
}

func (ts *termSource) Close() error {
	err := ts.prelude.Close()
	if lerr := ts.ln.Close(); err == nil {
		err = lerr
	}
	return err
}

func openSource(cfg Config, stdin *os.File) (lineSource, error) {
	var queue []io.Reader
	for _, name := range cfg.Prelude {
		f, err := os.Open(name)
		if err != nil {
			for _, r := range queue {
				r.(io.Closer).Close()
			}
			return nil, err
		}
		queue = append(queue, f)
	}
	if logio.IsTerminal(stdin) && liner.TerminalSupported() {
		return newTermSource(queue), nil
	}
	return &fileSource{fileinput.Input{Queue: append(queue, stdin)}}, nil
}

var errQuit = errors.New("quit")

// session connects a line source to an interpreter: one goroutine reads
// lines, the other owns the interpreter. The reader only reads after the
// interpreter hands it the next prompt, so lines are processed strictly in
// order and the prompt reflects the current nesting depth.
type session struct {
	in  *Interpreter
	src lineSource
	log logio.Sink
	out io.Writer

	prompt         string
	continuePrompt string
}

func (s *session) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	lines := make(chan fileinput.Line)
	prompts := make(chan string, 1)
	prompts <- s.prompt

	eg.Go(func() error {
		defer close(lines)
		for {
			var prompt string
			select {
			case <-ctx.Done():
				return nil
			case p, ok := <-prompts:
				if !ok {
					return nil
				}
				prompt = p
			}
			line, err := s.src.ReadLine(prompt)
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer close(prompts)
		for line := range lines {
			if err := s.handle(line); err != nil {
				return err
			}
			prompts <- s.nextPrompt()
		}
		if !s.in.build.complete() {
			s.log.Log(logio.LevelError, "input ended inside open context",
				"state", s.in.State().String())
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (s *session) nextPrompt() string {
	if s.in.Depth() > 0 {
		return s.continuePrompt
	}
	return s.prompt
}

// handle processes one line, which may be a meta command:
//	:reset  recover from an unbalanced close, discarding open contexts
//	:dump   describe interpreter state
//	:quit   stop reading input
func (s *session) handle(line fileinput.Line) error {
	switch strings.TrimSpace(line.Text) {
	case ":reset":
		s.in.Reset()
		return nil
	case ":dump":
		if err := s.in.Dump(s.out); err != nil {
			s.log.Log(logio.LevelError, "dump failed", "error", err.Error())
		}
		return nil
	case ":quit":
		return errQuit
	}
	// errors are already logged by the interpreter
	_ = s.in.ReadLine(line)
	return nil
}
