package fileinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/brackish/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text read there, sans line terminator.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The last read line is retained to facilitate user feedback.
type Input struct {
	rr    runeio.Reader
	Queue []io.Reader
	Last  Line

	name string
	line int
	sb   strings.Builder
}

// ReadLine reads the next line from the current input stream, advancing to
// the next queued stream at end of file. A final line lacking a terminator is
// still returned; io.EOF is returned only after every stream is exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		line, err := in.readLine()
		if err == nil {
			return line, nil
		}
		if err != io.EOF {
			return Line{}, err
		}
		if in.sb.Len() > 0 {
			return in.takeLine(), nil
		}
		in.closeIn()
	}
}

func (in *Input) readLine() (Line, error) {
	for {
		r, _, err := in.rr.ReadRune()
		if err != nil {
			return Line{}, err
		}
		if r == '\n' {
			return in.takeLine(), nil
		}
		in.sb.WriteRune(r)
	}
}

func (in *Input) takeLine() Line {
	in.line++
	text := strings.TrimSuffix(in.sb.String(), "\r")
	in.sb.Reset()
	in.Last = Line{Location{in.name, in.line}, text}
	return in.Last
}

// Close closes the current stream and every stream still queued, returning
// the first error encountered.
func (in *Input) Close() (err error) {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			err = cl.Close()
		}
		in.rr = nil
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
}

func (in *Input) nextIn() bool {
	in.closeIn()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.name = nameOf(r)
		in.line = 0
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
