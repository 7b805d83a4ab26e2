package codegen

import (
	"fmt"
	"rvcc/pkg/lexer"
)

type Operation string

// List of IR operations. All of them act on the single accumulator.
const (
	OpLoad Operation = "li"  // acc = Arg
	OpAdd  Operation = "add" // acc = acc + Arg
	OpRet  Operation = "ret" // return acc
)

type Instruction struct {
	Op  Operation
	Arg int64

	Pos lexer.Position // Source location of the operand (for diagnostics)
}

// String returns a string representation of the instruction
func (i Instruction) String() string {
	if i.Op == OpRet {
		return fmt.Sprintf("(%s)", i.Op)
	}

	return fmt.Sprintf("(%s, %d)", i.Op, i.Arg)
}

// GetOperatorSign maps an operator symbol to the sign applied to its operand
func GetOperatorSign(symbol byte) (int64, bool) {
	switch symbol {
	case '+':
		return 1, true
	case '-':
		return -1, true
	default:
		return 0, false
	}
}
