package main

import (
	"fmt"
	"strconv"

	"github.com/jcorbin/brackish/internal/flushio"
)

type dumper struct {
	in  *Interpreter
	out flushio.WriteFlusher

	err error
}

func (dump *dumper) dump() error {
	dump.printf("# Interpreter Dump")
	dump.printf("  location: %v", dump.in.loc)
	dump.printf("  state: %v", dump.in.State())

	dump.dumpSyntax()
	dump.dumpStack()
	dump.dumpMacros()
	dump.dumpVars()

	if err := dump.out.Flush(); dump.err == nil {
		dump.err = err
	}
	return dump.err
}

func (dump *dumper) dumpSyntax() {
	b := &dump.in.build
	if len(b.top) == 0 && len(b.frames) == 0 {
		return
	}
	dump.printf("# Pending Syntax")
	if len(b.top) > 0 {
		dump.printf("  top: %v", Seq(b.top))
	}
	width := len(strconv.Itoa(len(b.frames)))
	for i, frame := range b.frames {
		dump.printf("  frame[% *v]: %v", width, i, frame)
	}
}

func (dump *dumper) dumpStack() {
	stack := dump.in.eval.stack
	dump.printf("# Value Stack (%v)", len(stack))
	width := len(strconv.Itoa(len(stack)))
	for i := len(stack) - 1; i >= 0; i-- {
		dump.printf("  % *v %v", width, i, stack[i])
	}
}

func (dump *dumper) dumpMacros() {
	macros := &dump.in.eval.macros
	if macros.Len() == 0 {
		return
	}
	dump.printf("# Macros (%v)", macros.Len())
	macros.Ascend(func(_ string, mac Macro) bool {
		dump.printf("  %v", mac)
		return dump.err == nil
	})
}

func (dump *dumper) dumpVars() {
	vars := &dump.in.eval.vars
	if vars.Len() == 0 {
		return
	}
	dump.printf("# Variables (%v)", vars.Len())
	vars.Ascend(func(name string, val Value) bool {
		dump.printf("  %v = %v", Ref(name), val)
		return dump.err == nil
	})
}

func (dump *dumper) printf(mess string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, mess+"\n", args...)
	}
}
