package main

// Op enumerates the built-in operators. Words resolve to an Op before the
// macro table is consulted; opNone means "not a built-in".
type Op int

// Built-in operators.
const (
	opNone Op = iota
	opAdd
	opSub
	opMul
	opDiv
	opMod
	opList
	opVar
	opFn
	numOps
)

var opNames = [numOps]string{
	opAdd:  "+",
	opSub:  "-",
	opMul:  "*",
	opDiv:  "/",
	opMod:  "%",
	opList: "@",
	opVar:  "$",
	opFn:   "fn",
}

var opsByName = make(map[string]Op, numOps)

func init() {
	for op := opNone + 1; op < numOps; op++ {
		if opNames[op] == "" {
			panic("built-in operator missing a name")
		}
		opsByName[opNames[op]] = op
	}
}

func (op Op) String() string {
	if op > opNone && op < numOps {
		return opNames[op]
	}
	return "<none>"
}

// lookupOp classifies a word as a built-in operator, or opNone.
func lookupOp(name string) Op { return opsByName[name] }

// Builtins returns the reserved built-in names in operator order.
func Builtins() []string {
	names := make([]string, 0, numOps-1)
	for op := opNone + 1; op < numOps; op++ {
		names = append(names, opNames[op])
	}
	return names
}

func (op Op) binary() bool {
	switch op {
	case opAdd, opSub, opMul, opDiv, opMod:
		return true
	}
	return false
}

// arith computes a binary operator; b is the right operand, popped first.
func (op Op) arith(a, b Number) (Number, *Error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return 0, errorf(DivisionByZero, op.String(), "%v / 0", a)
		}
		return a / b, nil
	case opMod:
		if b == 0 {
			return 0, errorf(ModuloByZero, op.String(), "%v %% 0", a)
		}
		return a % b, nil
	}
	return 0, errorf(StructuralDefect, op.String(), "not an arithmetic operator")
}
