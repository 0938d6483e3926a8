package main

import (
	"strconv"
	"strings"
)

// Value is a runtime stack item: a Number, a List or a Ref.
type Value interface {
	String() string
	isValue()
}

// Number is an integer value.
type Number int

// List is an ordered collection built by the @ operator.
type List []Value

// Ref names a variable or macro; it is pushed by 'name literals.
type Ref string

func (Number) isValue() {}
func (List) isValue()   {}
func (Ref) isValue()    {}

func (n Number) String() string { return strconv.Itoa(int(n)) }
func (r Ref) String() string    { return "'" + Word(r).String() }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, val := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func typeName(val Value) string {
	switch val.(type) {
	case Number:
		return "number"
	case List:
		return "list"
	case Ref:
		return "ref"
	default:
		return "nil"
	}
}

// FormatStack renders a value stack bottom to top, e.g. "[1 (2 3) 'x]".
func FormatStack(stack []Value) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// literal parses integer and 'name words.
func literal(text string) (Value, bool) {
	if n, err := strconv.ParseInt(text, 10, strconv.IntSize); err == nil {
		return Number(n), true
	}
	if len(text) > 1 && text[0] == '\'' {
		return Ref(text[1:]), true
	}
	return nil, false
}
