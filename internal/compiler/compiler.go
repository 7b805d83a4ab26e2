package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"rvcc/internal/config"
	"rvcc/pkg/codegen"
	"rvcc/pkg/codegen/assembly"
	arm64_macos "rvcc/pkg/codegen/assembly/arm64/macos"
	riscv64_linux "rvcc/pkg/codegen/assembly/riscv64/linux"
	x86_64_linux "rvcc/pkg/codegen/assembly/x86_64/linux"
	"rvcc/pkg/color"
	"rvcc/pkg/interpreter"
	"rvcc/pkg/lexer"

	"github.com/charmbracelet/log"
)

var ErrUnknownTarget = errors.New("unknown target architecture")

// Targets lists the supported values of TargetArch
var Targets = []string{"riscv64-linux", "arm64-macos", "x86_64-linux"}

type Compiler struct {
	Verbose         bool   // Enable verbose output
	ShouldInterpret bool   // Whether to interpret the code
	ShouldCompile   bool   // Whether to compile the code
	NoColor         bool   // Disable colored output
	TargetArch      string // Target architecture for compilation (e.g., "riscv64-linux")
	Expression      string // Expression text to compile
	OutputFile      string // Path to the output file
	MaxSteps        int    // Interpreter step limit, 0 for none

	Stdout io.Writer // Generated code / program output, os.Stdout if nil
	Stderr io.Writer // Diagnostics, os.Stderr if nil
}

// New returns a Compiler populated from cfg
func New(cfg config.Config) *Compiler {
	c := &Compiler{}
	c.ApplyConfig(cfg, func(string) bool { return false })
	return c
}

// ApplyConfig copies cfg into opts for every setting the caller did not set explicitly.
// changed reports whether the named flag was given on the command line.
func (opts *Compiler) ApplyConfig(cfg config.Config, changed func(name string) bool) {
	if !changed("arch") {
		opts.TargetArch = cfg.Target
	}
	if !changed("output") {
		opts.OutputFile = cfg.Output
	}
	if !changed("verbose") {
		opts.Verbose = cfg.Verbose
	}
	if !changed("no-color") {
		opts.NoColor = !cfg.Color
	}
	if !changed("max-steps") {
		opts.MaxSteps = cfg.MaxSteps
	}
}

// Compile tokenizes the expression, generates accumulator code and then prints,
// interprets or builds it based on the options set. Nothing is written to Stdout
// unless every stage succeeded.
func (opts *Compiler) Compile() error {
	log.Debug("Processing expression", "expression", opts.Expression, "target", opts.TargetArch)

	tokens, err := lexer.Tokenize(opts.Expression)
	if err != nil {
		opts.report(err)
		return fmt.Errorf("tokenizing failed: %w", err)
	}
	log.Debug("Tokenized", "tokens", tokens.Len())

	instructions, err := codegen.Emit(tokens)
	if err != nil {
		opts.report(err)
		return fmt.Errorf("code generation failed: %w", err)
	}
	log.Debug("Generated", "instructions", len(instructions))

	if opts.Verbose {
		opts.dumpInstructions(instructions)
	}

	if opts.ShouldInterpret {
		intr := interpreter.NewInterpreter(instructions, interpreter.WithMaxSteps(opts.MaxSteps))
		if err := intr.Run(); err != nil {
			return fmt.Errorf("interpretation failed: %w", err)
		}

		fmt.Fprintln(opts.stderr(), color.GreenText("\n=== Program Output ==="))
		fmt.Fprintf(opts.stdout(), "%d\n", intr.Accumulator())
		log.Debug("Interpreted", "steps", intr.Steps(), "exit", intr.ExitStatus())
		return nil
	}

	arch, err := opts.NewAssembly(instructions)
	if err != nil {
		return err
	}

	if err := arch.Generate(); err != nil {
		return fmt.Errorf("assembly generation failed: %w", err)
	}

	if !opts.ShouldCompile {
		_, err := io.WriteString(opts.stdout(), arch.GetCode())
		return err
	}

	if opts.Verbose {
		fmt.Fprintln(opts.stderr(), color.GreenText("\nGenerated Assembly code"))
		fmt.Fprint(opts.stderr(), arch.GetCode())
	}

	if err := arch.Build(); err != nil {
		return fmt.Errorf("assembly build failed: %w", err)
	}
	log.Info("Built executable", "output", opts.OutputFile)

	return nil
}

// NewAssembly selects the backend for TargetArch
func (opts *Compiler) NewAssembly(instructions []codegen.Instruction) (assembly.Assembly, error) {
	switch opts.TargetArch {
	case "riscv64-linux", "":
		return riscv64_linux.NewRiscv64Linux(instructions, opts.OutputFile), nil
	case "arm64-macos":
		return arm64_macos.NewArm64Macos(instructions, opts.OutputFile), nil
	case "x86_64-linux":
		return x86_64_linux.NewX86_64Linux(instructions, opts.OutputFile), nil
	default:
		return nil, fmt.Errorf("%w %q (supported: %v)", ErrUnknownTarget, opts.TargetArch, Targets)
	}
}

// report prints a caret diagnostic for errors that carry a source position
func (opts *Compiler) report(err error) {
	var posErr *lexer.Error
	if !errors.As(err, &posErr) {
		return
	}

	fmt.Fprintln(opts.stderr(), color.ErrorAt(opts.Expression, posErr.Pos.Offset, err.Error()))
}

// dumpInstructions prints the accumulator program to stderr
func (opts *Compiler) dumpInstructions(instructions []codegen.Instruction) {
	w := opts.stderr()

	fmt.Fprintln(w, color.GreenText("\n=== Generated Accumulator Code ==="))
	for i, instr := range instructions {
		arg := ""
		if instr.Op != codegen.OpRet {
			arg = fmt.Sprintf("%d", instr.Arg)
		}

		fmt.Fprintf(w, "%s: (%s, %s)\n",
			color.CyanText(fmt.Sprintf("%d", i)),
			color.YellowText(string(instr.Op)),
			color.BlueText(arg))
	}
}

func (opts *Compiler) stdout() io.Writer {
	if opts.Stdout == nil {
		return os.Stdout
	}
	return opts.Stdout
}

func (opts *Compiler) stderr() io.Writer {
	if opts.Stderr == nil {
		return os.Stderr
	}
	return opts.Stderr
}
