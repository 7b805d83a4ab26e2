package riscv64_linux

import (
	"bytes"

	"rvcc/pkg/codegen"
	"rvcc/pkg/codegen/assembly"
)

type riscv64Linux struct {
	pb []codegen.Instruction // accumulator instructions

	output string // output file name

	stageWide bool // put operands outside imm12 in a scratch register

	text bytes.Buffer // .text section
}

// NewRiscv64Linux creates a new riscv64Linux assembly generator instance
func NewRiscv64Linux(PB []codegen.Instruction, output string) assembly.Assembly {
	return &riscv64Linux{
		pb:     PB,
		output: output,
	}
}

// Generate generates the assembly code from the PB instructions
func (a *riscv64Linux) Generate() error {
	a.text.Reset()

	a.addText("  .global main")
	a.addText("main:")

	return a.emitInstructions()
}

// GetCode returns the generated assembly code as a string
func (a *riscv64Linux) GetCode() string {
	return a.text.String()
}

// AssemblerCode returns code for pb that the GNU assembler accepts for any operand.
// It differs from GetCode only where an add operand does not fit a 12-bit immediate.
func AssemblerCode(PB []codegen.Instruction) (string, error) {
	a := &riscv64Linux{pb: PB, stageWide: true}
	if err := a.Generate(); err != nil {
		return "", err
	}
	return a.GetCode(), nil
}

// Build assembles and links the code into a static riscv64 executable
func (a *riscv64Linux) Build() error {
	code, err := AssemblerCode(a.pb)
	if err != nil {
		return err
	}

	return assembly.Build(code, a.output,
		[]string{"riscv64-linux-gnu-gcc", "-static", "-o", assembly.ExecFile, assembly.SourceFile},
	)
}
