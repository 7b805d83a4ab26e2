package riscv64_linux

import (
	"fmt"
	"rvcc/pkg/codegen"
	"rvcc/pkg/codegen/assembly"
)

const (
	acc     = "a0" // accumulator, also the return value
	scratch = "t0" // temporary for operands outside imm12
)

// emitInstructions translates each PB instruction into one line, or two when
// a wide operand is staged
func (a *riscv64Linux) emitInstructions() error {
	for idx, instr := range a.pb {
		switch instr.Op {
		case codegen.OpLoad:
			a.addText(fmt.Sprintf("  li %s, %d", acc, instr.Arg))
		case codegen.OpAdd:
			if a.stageWide && !fitsImm12(instr.Arg) {
				a.addText(fmt.Sprintf("  li %s, %d", scratch, instr.Arg))
				a.addText(fmt.Sprintf("  add %s, %s, %s", acc, acc, scratch))
				continue
			}
			a.addText(fmt.Sprintf("  add %s, %s, %d", acc, acc, instr.Arg))
		case codegen.OpRet:
			a.addText("  ret")
		default:
			return fmt.Errorf("%w %q at %d", assembly.ErrUnsupportedOperation, instr.Op, idx)
		}
	}

	return nil
}

// addText adds an instruction to the text section
func (a *riscv64Linux) addText(instruction string) {
	a.text.WriteString(instruction + "\n")
}

// fitsImm12 reports whether val fits the signed 12-bit immediate of addi
func fitsImm12(val int64) bool {
	return val >= -2048 && val <= 2047
}
