package main

import (
	"strings"

	"github.com/jcorbin/brackish/internal/logio"
	"github.com/jcorbin/brackish/internal/runeio"
)

// Sub is a syntax node: either a Word leaf or a nested Tree.
type Sub interface {
	String() string
	isSub()
}

// Word is a leaf syntax node.
type Word string

// Tree is a bracketed context; its order is evaluation order.
type Tree []Sub

func (Word) isSub() {}
func (Tree) isSub() {}

func (w Word) String() string { return runeio.Caret(string(w)) }

func (t Tree) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t Tree) writeTo(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, sub := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch sub := sub.(type) {
		case Tree:
			sub.writeTo(sb)
		default:
			sb.WriteString(sub.String())
		}
	}
	sb.WriteByte(']')
}

// Seq renders a top level sequence, e.g. the fragment returned by a
// completed line, without enclosing brackets.
func Seq(subs []Sub) string {
	s := Tree(subs).String()
	return s[1 : len(s)-1]
}

// builder assembles tokens into a top level sequence of syntax nodes. Its
// frame stack is the only record of nesting depth; see State.
type builder struct {
	logging

	top     []Sub
	frames  []Tree
	invalid bool
}

func (b *builder) push(tok Token) error {
	switch tok.Kind {
	case EnterToken:
		return b.enter()
	case ExitToken:
		return b.exit()
	default:
		return b.word(tok.Text)
	}
}

func (b *builder) word(text string) error {
	if b.invalid {
		return b.poisoned(wordToken(text))
	}
	if i := len(b.frames) - 1; i >= 0 {
		b.frames[i] = append(b.frames[i], Word(text))
	} else {
		b.top = append(b.top, Word(text))
	}
	return nil
}

// complete returns true if the builder is Outside, with no open frames.
func (b *builder) complete() bool {
	return !b.invalid && len(b.frames) == 0
}

// take returns the completed top level sequence, leaving it empty; it
// returns nil while any context remains open.
func (b *builder) take() []Sub {
	if !b.complete() {
		return nil
	}
	top := b.top
	b.top = nil
	return top
}

// reset discards all structural state, including any Invalid poisoning.
func (b *builder) reset() {
	b.logf(logio.LevelDebug, "resetting nesting state",
		"state", b.State().String(),
		"discarded", len(b.top)+len(b.frames))
	b.top = nil
	b.frames = nil
	b.invalid = false
}

func (b *builder) openFrame() {
	b.frames = append(b.frames, nil)
}

func (b *builder) closeFrame() error {
	i := len(b.frames) - 1
	if i < 0 {
		err := errorf(StructuralDefect, "", "no open frame to close")
		b.logf(logio.LevelError, err.Error())
		return err
	}
	tree := b.frames[i]
	if tree == nil {
		tree = Tree{}
	}
	b.frames[i] = nil
	b.frames = b.frames[:i]
	if i--; i >= 0 {
		b.frames[i] = append(b.frames[i], tree)
	} else {
		b.top = append(b.top, tree)
	}
	return nil
}
