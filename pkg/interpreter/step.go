package interpreter

import (
	"fmt"
	"rvcc/pkg/codegen"
)

// Exec runs a PB program with the default step function and returns the final accumulator
func Exec(pb []codegen.Instruction) (int64, error) {
	it := NewInterpreter(pb)
	if err := it.Run(); err != nil {
		return 0, err
	}
	return it.Accumulator(), nil
}

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(i *Interpreter) (bool, error) {
	pc := i.PC()
	if pc < 0 || pc >= len(i.pb) {
		// halt if PC goes out of bounds
		return true, nil
	}

	in := i.pb[pc]

	switch in.Op {
	case codegen.OpLoad:
		i.acc = in.Arg
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpAdd:
		i.acc += in.Arg
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpRet:
		return true, nil

	default:
		return false, fmt.Errorf("%w %q at pc %d", ErrUnknownOperation, in.Op, pc)
	}
}
