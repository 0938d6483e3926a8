package main

import (
	"fmt"

	"github.com/jcorbin/brackish/internal/logio"
)

// NestingState is the position of the interpreter relative to open contexts:
// Outside, Inside(depth), or Invalid once an unbalanced close is seen.
type NestingState struct {
	Invalid bool
	Inside  bool
	Depth   int
}

// Outside is the initial NestingState.
var Outside = NestingState{}

// Inside returns the state of having depth+1 open contexts.
func Inside(depth int) NestingState { return NestingState{Inside: true, Depth: depth} }

// Invalid is the poisoned state entered by an unbalanced close.
var Invalid = NestingState{Invalid: true}

func (st NestingState) String() string {
	switch {
	case st.Invalid:
		return "Invalid"
	case st.Inside:
		return fmt.Sprintf("Inside(%d)", st.Depth)
	default:
		return "Outside"
	}
}

// State derives the nesting state from the frame stack.
func (b *builder) State() NestingState {
	if b.invalid {
		return Invalid
	}
	if n := len(b.frames); n > 0 {
		return Inside(n - 1)
	}
	return Outside
}

// enter opens a context:
//	Outside   -> Inside(0)
//	Inside(d) -> Inside(d+1)
//	Invalid   -> Invalid
func (b *builder) enter() error {
	if b.invalid {
		return b.poisoned(enterToken)
	}
	from := b.State()
	b.openFrame()
	if from.Inside {
		b.logf(logio.LevelTrace, "incrementing inside", "depth", b.State().Depth)
	} else {
		b.logf(logio.LevelTrace, "entering execution context", "depth", 0)
	}
	return nil
}

// exit closes a context:
//	Inside(0)   -> Outside
//	Inside(d>0) -> Inside(d-1)
//	Outside     -> Invalid
//	Invalid     -> Invalid
func (b *builder) exit() error {
	if b.invalid {
		return b.poisoned(exitToken)
	}
	if len(b.frames) == 0 {
		b.invalid = true
		err := errorf(UnbalancedClose, "]", "no open context")
		b.logf(logio.LevelError, "unbalanced close, state invalid",
			"from", Outside.String(),
			"to", Invalid.String())
		return err
	}
	if err := b.closeFrame(); err != nil {
		return err
	}
	if st := b.State(); st.Inside {
		b.logf(logio.LevelTrace, "decrementing inside", "depth", st.Depth)
	} else {
		b.logf(logio.LevelTrace, "exiting execution context")
	}
	return nil
}

func (b *builder) poisoned(tok Token) error {
	err := errorf(AlreadyInvalid, "", "%v ignored until reset", tok)
	b.logf(logio.LevelError, "state invalid, token ignored", "token", tok.String())
	return err
}
