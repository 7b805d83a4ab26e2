package x86_64_linux

import (
	"bytes"
	"fmt"

	"rvcc/pkg/codegen"
	"rvcc/pkg/codegen/assembly"
)

type x86_64Linux struct {
	pb []codegen.Instruction // accumulator instructions

	output string // output file name

	text bytes.Buffer // .text section
}

// NewX86_64Linux creates a new x86-64 (AT&T syntax) assembly generator instance
func NewX86_64Linux(PB []codegen.Instruction, output string) assembly.Assembly {
	return &x86_64Linux{
		pb:     PB,
		output: output,
	}
}

// Generate generates the assembly code from the PB instructions
func (a *x86_64Linux) Generate() error {
	a.text.Reset()

	a.addText("\t.text")
	a.addText("\t.globl main")
	a.addText("main:")

	for idx, instr := range a.pb {
		switch instr.Op {
		case codegen.OpLoad:
			a.addText(fmt.Sprintf("\tmovl $%d, %%eax", int32(instr.Arg)))
		case codegen.OpAdd:
			a.addText(fmt.Sprintf("\taddl $%d, %%eax", int32(instr.Arg)))
		case codegen.OpRet:
			a.addText("\tret")
		default:
			return fmt.Errorf("%w %q at %d", assembly.ErrUnsupportedOperation, instr.Op, idx)
		}
	}

	// Mark the stack non-executable
	a.addText("\t.section .note.GNU-stack,\"\",@progbits")

	return nil
}

// GetCode returns the generated assembly code as a string
func (a *x86_64Linux) GetCode() string {
	return a.text.String()
}

// Build assembles and links with the host C compiler
func (a *x86_64Linux) Build() error {
	return assembly.Build(a.GetCode(), a.output,
		[]string{"cc", "-o", assembly.ExecFile, assembly.SourceFile},
	)
}

// addText adds an instruction to the text section
func (a *x86_64Linux) addText(instruction string) {
	a.text.WriteString(instruction + "\n")
}
