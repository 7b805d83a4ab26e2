package arm64_macos

import (
	"fmt"
	"rvcc/pkg/codegen"
	"rvcc/pkg/codegen/assembly"
)

const (
	acc     = "w0" // accumulator, also the return value
	scratch = "w9" // caller saved temporary for wide operands
)

// emitInstructions translates PB instructions. Operands that do not fit an
// immediate are staged in the scratch register first.
func (a *arm64Macos) emitInstructions() error {
	for idx, instr := range a.pb {
		switch instr.Op {
		case codegen.OpLoad:
			a.loadImmediate(acc, instr.Arg)

		case codegen.OpAdd:
			mnemonic, magnitude := "add", instr.Arg
			if magnitude < 0 {
				mnemonic, magnitude = "sub", -magnitude
			}

			if fitsImm12(magnitude) {
				a.addText(fmt.Sprintf("\t%s %s, %s, #%d", mnemonic, acc, acc, magnitude))
			} else {
				a.loadImmediate(scratch, magnitude)
				a.addText(fmt.Sprintf("\t%s %s, %s, %s", mnemonic, acc, acc, scratch))
			}

		case codegen.OpRet:
			a.addText("\tret")

		default:
			return fmt.Errorf("%w %q at %d", assembly.ErrUnsupportedOperation, instr.Op, idx)
		}
	}

	return nil
}
