package main

import (
	"github.com/jcorbin/brackish/internal/logio"
	"github.com/jcorbin/brackish/internal/panicerr"
)

// evaluator runs syntax trees in postfix order against a value stack.
//
// Operands are checked before anything is popped, so an arity or type error
// leaves the stack untouched. Division and modulo by zero are the exception:
// both operands are consumed and no result is pushed.
type evaluator struct {
	logging

	stack  []Value
	macros Table[Macro]
	vars   Table[Value]

	depth      int
	depthLimit int
}

// evaluate runs one top level fragment, converting any panic into a
// StructuralDefect error.
func (ev *evaluator) evaluate(frag []Sub) error {
	depth := ev.depth
	err := panicerr.Guard("evaluate", func() error {
		return ev.evalSeq(frag)
	})
	if panicerr.IsPanic(err) {
		ev.depth = depth
		err = &Error{Kind: StructuralDefect, Detail: "evaluation panic", Err: err}
	}
	return err
}

func (ev *evaluator) evalSeq(seq []Sub) error {
	for i := 0; i < len(seq); i++ {
		switch sub := seq[i].(type) {
		case Tree:
			if err := ev.evalSeq(sub); err != nil {
				return err
			}
		case Word:
			if lookupOp(string(sub)) == opFn {
				n, err := ev.define(seq[i+1:])
				if err != nil {
					return err
				}
				i += n
			} else if err := ev.evalWord(string(sub)); err != nil {
				return err
			}
		default:
			return errorf(StructuralDefect, "", "unexpected syntax node %T", sub)
		}
	}
	return nil
}

// evalWord resolves a word as a built-in, then a macro, then a literal.
func (ev *evaluator) evalWord(word string) error {
	if op := lookupOp(word); op != opNone {
		return ev.apply(op)
	}
	if mac, err := ev.macros.Lookup(word); err == nil {
		return ev.call(mac)
	}
	if val, ok := literal(word); ok {
		ev.push(val)
		return nil
	}
	return errorf(UndefinedWord, word, "")
}

func (ev *evaluator) call(mac Macro) error {
	if ev.depth >= ev.limit() {
		return errorf(CallDepthExceeded, mac.Name, "limit %v", ev.limit())
	}
	ev.depth++
	defer func() { ev.depth-- }()
	ev.logf(logio.LevelTrace, "calling macro", "name", mac.Name, "depth", ev.depth)
	return ev.evalSeq(mac.Body)
}

func (ev *evaluator) limit() int {
	if ev.depthLimit < 1 {
		return DefaultCallDepthLimit
	}
	return ev.depthLimit
}

// define handles "fn NAME [BODY]", given the siblings following fn; it
// returns how many of them it consumed.
func (ev *evaluator) define(rest []Sub) (int, error) {
	if len(rest) < 2 {
		return len(rest), errorf(ArityMismatch, "fn", "expected a name and a bracketed body")
	}
	name, isWord := rest[0].(Word)
	body, isTree := rest[1].(Tree)
	if !isWord || !isTree {
		return 2, errorf(ArityMismatch, "fn", "expected a name and a bracketed body, got %v %v", rest[0], rest[1])
	}
	if op := lookupOp(string(name)); op != opNone {
		return 2, errorf(ReservedName, string(name), "built-in operator")
	}
	if _, isLiteral := literal(string(name)); isLiteral {
		return 2, errorf(ReservedName, string(name), "literal")
	}
	replaced := ev.macros.Define(string(name), Macro{string(name), body})
	ev.logf(logio.LevelDebug, "defined macro",
		"name", string(name),
		"body", body.String(),
		"replaced", replaced)
	return 2, nil
}

func (ev *evaluator) apply(op Op) error {
	switch {
	case op.binary():
		return ev.binary(op)
	case op == opList:
		return ev.list()
	case op == opVar:
		return ev.variable()
	case op == opFn:
		return errorf(StructuralDefect, "fn", "must be handled by sequence evaluation")
	}
	return errorf(StructuralDefect, op.String(), "unknown operator")
}

func (ev *evaluator) binary(op Op) error {
	if err := ev.need(op, 2); err != nil {
		return err
	}
	b, bok := ev.peek(0).(Number)
	a, aok := ev.peek(1).(Number)
	if !aok || !bok {
		return errorf(TypeMismatch, op.String(), "expected number number, got %v %v",
			typeName(ev.peek(1)), typeName(ev.peek(0)))
	}
	ev.pop()
	ev.pop()
	res, err := op.arith(a, b)
	if err != nil {
		return err
	}
	ev.push(res)
	return nil
}

// list implements "item... count @", pushing a List whose first element is
// the first item popped.
func (ev *evaluator) list() error {
	if err := ev.need(opList, 1); err != nil {
		return err
	}
	count, ok := ev.peek(0).(Number)
	if !ok {
		return errorf(TypeMismatch, "@", "expected number count, got %v", typeName(ev.peek(0)))
	}
	if count < 0 {
		return errorf(ArityMismatch, "@", "negative count %v", count)
	}
	if have := len(ev.stack) - 1; int(count) > have {
		return errorf(ArityMismatch, "@", "need %v items, have %v", count, have)
	}
	ev.pop()
	l := make(List, 0, count)
	for i := Number(0); i < count; i++ {
		l = append(l, ev.pop())
	}
	ev.push(l)
	return nil
}

// variable implements $ with two forms:
//	'name $        pushes the value bound to name
//	'name value $  binds value to name
func (ev *evaluator) variable() error {
	if err := ev.need(opVar, 1); err != nil {
		return err
	}
	if ref, isRef := ev.peek(0).(Ref); isRef {
		val, err := ev.vars.Lookup(string(ref))
		if err != nil {
			return err
		}
		ev.pop()
		ev.push(val)
		return nil
	}
	if err := ev.need(opVar, 2); err != nil {
		return err
	}
	ref, isRef := ev.peek(1).(Ref)
	if !isRef {
		return errorf(TypeMismatch, "$", "expected ref beneath value, got %v", typeName(ev.peek(1)))
	}
	val := ev.pop()
	ev.pop()
	ev.vars.Define(string(ref), val)
	ev.logf(logio.LevelDebug, "bound variable", "name", string(ref), "value", val.String())
	return nil
}

func (ev *evaluator) need(op Op, n int) error {
	if have := len(ev.stack); have < n {
		return errorf(ArityMismatch, op.String(), "need %v operands, have %v", n, have)
	}
	return nil
}

func (ev *evaluator) peek(i int) Value { return ev.stack[len(ev.stack)-1-i] }

func (ev *evaluator) push(val Value) {
	ev.stack = append(ev.stack, val)
}

func (ev *evaluator) pop() (val Value) {
	i := len(ev.stack) - 1
	val, ev.stack = ev.stack[i], ev.stack[:i]
	return val
}
