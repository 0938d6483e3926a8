package main

import (
	"io"

	"github.com/jcorbin/brackish/internal/flushio"
	"github.com/jcorbin/brackish/internal/logio"
)

// Option configures an Interpreter.
type Option interface{ apply(in *Interpreter) }

// DefaultCallDepthLimit bounds macro recursion unless overridden.
const DefaultCallDepthLimit = 256

var defaults = []Option{
	withSink{logio.Discard},
	withCallDepthLimit(DefaultCallDepthLimit),
	withName("<input>"),
}

func (in *Interpreter) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(in)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

// WithSink directs diagnostics to sink.
func WithSink(sink logio.Sink) Option { return withSink{sink} }

// WithOutput prints the value stack to w after every evaluated fragment.
func WithOutput(w io.Writer) Option { return withOutput{w} }

// WithCallDepthLimit bounds macro call nesting; a limit below 1 selects
// DefaultCallDepthLimit.
func WithCallDepthLimit(limit int) Option { return withCallDepthLimit(limit) }

// WithName names the input for diagnostic locations.
func WithName(name string) Option { return withName(name) }

type withSink struct{ logio.Sink }
type withOutput struct{ io.Writer }
type withCallDepthLimit int
type withName string

func (o withSink) apply(in *Interpreter) {
	in.logging = logging{o.Sink}
	in.build.logging = in.logging
	in.eval.logging = in.logging
}

func (o withOutput) apply(in *Interpreter) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = nil
	if o.Writer != nil {
		in.out = flushio.NewWriteFlusher(o.Writer)
	}
}

func (lim withCallDepthLimit) apply(in *Interpreter) {
	if lim < 1 {
		lim = DefaultCallDepthLimit
	}
	in.eval.depthLimit = int(lim)
}

func (name withName) apply(in *Interpreter) {
	in.loc.Name = string(name)
}
