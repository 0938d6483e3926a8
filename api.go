package main

import (
	"io"

	"github.com/jcorbin/brackish/internal/fileinput"
	"github.com/jcorbin/brackish/internal/flushio"
	"github.com/jcorbin/brackish/internal/logio"
)

// Interpreter turns lines of bracketed text into syntax trees and evaluates
// each completed top level fragment. It is not safe for concurrent use.
type Interpreter struct {
	logging
	build builder
	eval  evaluator
	out   flushio.WriteFlusher
	loc   fileinput.Location
}

// New creates an interpreter; see the With* options.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	in.apply(opts...)
	return &in
}

// Line processes one line of input. Contexts left open at the end of the
// line stay open; once the line returns to the top level, the completed
// fragment is evaluated. Every error encountered is returned in a LineErrors,
// having already been logged.
func (in *Interpreter) Line(text string) error {
	in.loc.Line++
	return in.process(text)
}

// ReadLine processes a line read from a named input, attributing diagnostics
// to its location.
func (in *Interpreter) ReadLine(line fileinput.Line) error {
	in.loc = line.Location
	return in.process(line.Text)
}

func (in *Interpreter) process(text string) error {
	in.logf(logio.LevelDebug, "line",
		"location", in.loc.String(),
		"length", len(text),
		"content", text)

	var errs LineErrors
	tz := tokenizer{emit: func(tok Token) {
		if err := in.build.push(tok); err != nil {
			errs = append(errs, err)
		}
	}}
	tz.scanString(text)
	tz.finish()

	if frag := in.build.take(); len(frag) > 0 {
		if err := in.evaluate(frag); err != nil {
			errs = append(errs, err)
		}
	}
	return errs.err()
}

func (in *Interpreter) evaluate(frag []Sub) error {
	in.logf(logio.LevelTrace, "evaluating fragment", "fragment", Seq(frag))
	if err := in.eval.evaluate(frag); err != nil {
		in.logf(logio.LevelError, "evaluation abandoned",
			"location", in.loc.String(),
			"kind", KindOf(err).String(),
			"error", err.Error())
		return err
	}
	stack := FormatStack(in.eval.stack)
	in.logf(logio.LevelDebug, "evaluated fragment", "stack", stack)
	if in.out != nil {
		if err := flushio.WriteLine(in.out, stack); err != nil {
			in.logf(logio.LevelError, "output failed", "error", err.Error())
			return err
		}
	}
	return nil
}

// State returns the current nesting state.
func (in *Interpreter) State() NestingState { return in.build.State() }

// Depth returns the number of currently open contexts.
func (in *Interpreter) Depth() int { return len(in.build.frames) }

// Reset returns an Invalid or partially nested interpreter to Outside,
// discarding any unevaluated syntax. The value stack, macros and variables
// are kept.
func (in *Interpreter) Reset() { in.build.reset() }

// Stack returns a copy of the value stack, bottom first.
func (in *Interpreter) Stack() []Value { return append([]Value(nil), in.eval.stack...) }

// Macro returns the macro defined under name, or an UndefinedName error.
func (in *Interpreter) Macro(name string) (Macro, error) { return in.eval.macros.Lookup(name) }

// Macros returns every defined macro name in order.
func (in *Interpreter) Macros() []string { return in.eval.macros.Names() }

// Dump writes a human readable description of the interpreter state.
func (in *Interpreter) Dump(w io.Writer) error {
	dump := dumper{in: in, out: flushio.NewWriteFlusher(w)}
	return dump.dump()
}
