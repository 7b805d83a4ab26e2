package interpreter

import (
	"errors"
	"rvcc/pkg/codegen"
)

// Interpreter executes the accumulator IR produced by codegen
type Interpreter struct {
	pb []codegen.Instruction // program block (list of instructions)
	ip int                   // instruction pointer

	acc    int64 // the accumulator register
	halted bool  // set once ret executes or the PC leaves the program

	// Exec hook (implemented in step.go, via SetExecStep)
	execStep func(*Interpreter) (halted bool, err error)

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
}

type Option func(*Interpreter)

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(pb []codegen.Instruction, opts ...Option) *Interpreter {
	it := &Interpreter{
		pb:       append([]codegen.Instruction(nil), pb...),
		ip:       0,
		maxSteps: 0, // 0 => unlimited
	}

	for _, o := range opts {
		o(it)
	}

	if it.execStep == nil {
		it.execStep = coreStep
	}

	return it
}

// Load replaces the current program block with a new one, resetting state
func (i *Interpreter) Load(pb []codegen.Instruction) {
	i.pb = append([]codegen.Instruction(nil), pb...)
	i.Reset()
}

// Reset clears runtime state (accumulator, IP, counters)
func (i *Interpreter) Reset() {
	i.ip = 0
	i.acc = 0
	i.halted = false
	i.steps = 0
}

// SetExecStep installs the core step function
func (i *Interpreter) SetExecStep(fn func(*Interpreter) (bool, error)) {
	i.execStep = fn
}

// Step executes a single instruction, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	if i.halted {
		return true, nil
	}

	if i.execStep == nil {
		return false, ErrNotImplemented
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := i.execStep(i)
	i.steps++
	i.halted = halted

	return halted, err
}

// Run executes until halt or error
func (i *Interpreter) Run() error {
	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// PC returns the current instruction pointer
func (i *Interpreter) PC() int {
	return i.ip
}

// SetPC sets the current instruction pointer
func (i *Interpreter) SetPC(pc int) {
	i.ip = pc
}

// Accumulator returns the current accumulator value
func (i *Interpreter) Accumulator() int64 {
	return i.acc
}

// ExitStatus returns the value a shell observes when the program returns the accumulator
func (i *Interpreter) ExitStatus() uint8 {
	return uint8(i.acc)
}

// Steps returns the number of instructions executed so far
func (i *Interpreter) Steps() int {
	return i.steps
}

var (
	ErrNotImplemented   = errors.New("interpreter step function not linked")
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
	ErrUnknownOperation = errors.New("unknown operation")
)
