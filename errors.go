package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the interpreter reports.
type ErrorKind int

// Error kinds; the zero value is not a valid kind.
const (
	_ ErrorKind = iota

	// structural, poisoning the nesting state
	UnbalancedClose
	AlreadyInvalid
	StructuralDefect

	// evaluation, abandoning the current fragment
	UndefinedWord
	UndefinedName
	DivisionByZero
	ModuloByZero
	ArityMismatch
	TypeMismatch
	ReservedName
	CallDepthExceeded
)

var errorKindNames = [...]string{
	UnbalancedClose:   "unbalanced close",
	AlreadyInvalid:    "already invalid",
	StructuralDefect:  "structural defect",
	UndefinedWord:     "undefined word",
	UndefinedName:     "undefined name",
	DivisionByZero:    "division by zero",
	ModuloByZero:      "modulo by zero",
	ArityMismatch:     "arity mismatch",
	TypeMismatch:      "type mismatch",
	ReservedName:      "reserved name",
	CallDepthExceeded: "call depth exceeded",
}

func (kind ErrorKind) String() string {
	if int(kind) < len(errorKindNames) && errorKindNames[kind] != "" {
		return errorKindNames[kind]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// Error implements error so that a bare kind may serve as an errors.Is target:
//	errors.Is(err, DivisionByZero)
func (kind ErrorKind) Error() string { return kind.String() }

// Structural returns true for kinds raised by the nesting tracker or tree
// builder rather than the evaluator.
func (kind ErrorKind) Structural() bool {
	return kind == UnbalancedClose || kind == AlreadyInvalid || kind == StructuralDefect
}

// Error is a typed interpreter failure.
type Error struct {
	Kind   ErrorKind
	Word   string
	Detail string
	Err    error
}

func (err *Error) Error() string {
	mess := err.Kind.String()
	if err.Word != "" {
		mess = fmt.Sprintf("%v %q", mess, err.Word)
	}
	if err.Detail != "" {
		mess = fmt.Sprintf("%v: %v", mess, err.Detail)
	}
	if err.Err != nil {
		mess = fmt.Sprintf("%v: %v", mess, err.Err)
	}
	return mess
}

func (err *Error) Unwrap() error { return err.Err }

// Is matches a bare ErrorKind target.
func (err *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == err.Kind
}

func errorf(kind ErrorKind, word, detail string, args ...interface{}) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Kind: kind, Word: word, Detail: detail}
}

// KindOf returns the kind of any interpreter Error within err, or zero.
func KindOf(err error) ErrorKind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return 0
}

// LineErrors collects every error reported while processing one input line.
type LineErrors []error

func (errs LineErrors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	}
	return fmt.Sprintf("%v (and %v more errors)", errs[0], len(errs)-1)
}

// Unwrap supports errors.Is and errors.As over every collected error.
func (errs LineErrors) Unwrap() []error { return errs }

func (errs LineErrors) err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
