package arm64_macos

import (
	"bytes"

	"rvcc/pkg/codegen"
	"rvcc/pkg/codegen/assembly"
)

type arm64Macos struct {
	pb []codegen.Instruction // accumulator instructions

	output string // output file name

	text bytes.Buffer // .text section
}

// NewArm64Macos creates a new arm64Macos assembly generator instance
func NewArm64Macos(PB []codegen.Instruction, output string) assembly.Assembly {
	return &arm64Macos{
		pb:     PB,
		output: output,
	}
}

// Generate generates the assembly code from the PB instructions
func (a *arm64Macos) Generate() error {
	a.text.Reset()

	// Emit header
	a.addText("\t.text")
	a.addText("\t.globl _main")
	a.addText("\t.p2align 2")
	a.addText("_main:")

	return a.emitInstructions()
}

// GetCode returns the generated assembly code as a string
func (a *arm64Macos) GetCode() string {
	return a.text.String()
}
