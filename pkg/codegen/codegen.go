package codegen

import (
	"fmt"
	"rvcc/pkg/lexer"
)

type Codegen struct {
	tokens *lexer.Sequence // Token stream, drained front to back
	pb     []Instruction   // Program Block (list of IR instructions)
}

// NewCodegen creates a new Codegen instance that takes ownership of tokens
func NewCodegen(tokens *lexer.Sequence) *Codegen {
	return &Codegen{
		tokens: tokens,
		pb:     make([]Instruction, 0, tokens.Len()+1),
	}
}

// Emit drains tokens and returns the accumulator program for them
func Emit(tokens *lexer.Sequence) ([]Instruction, error) {
	c := NewCodegen(tokens)
	if err := c.Generate(); err != nil {
		return nil, err
	}

	return c.GetProgram(), nil
}

// Generate walks the token stream once: a number seeds the accumulator,
// then every (operator, number) pair adds the signed number to it.
func (c *Codegen) Generate() error {
	tok, err := c.tokens.ConsumeNumber()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExpectedNumber, err)
	}
	c.emit(OpLoad, int64(tok.Value), tok.Pos)

	for !c.tokens.Empty() {
		op, _ := c.tokens.Next()

		symbol, isPunct := op.Punct()
		if !isPunct {
			return &lexer.Error{Pos: op.Pos, Err: ErrExpectedOperator, Detail: fmt.Sprintf("got %q", op.Lexeme)}
		}

		operand, err := c.tokens.ConsumeNumber()
		if err != nil {
			return err
		}

		sign, known := GetOperatorSign(symbol)
		if !known {
			return &lexer.Error{Pos: op.Pos, Err: ErrUnknownOperator, Detail: fmt.Sprintf("%q", symbol)}
		}

		c.emit(OpAdd, sign*int64(operand.Value), operand.Pos)
	}

	c.emit(OpRet, 0, c.tokens.End())

	return nil
}

// GetProgram returns the generated program block
func (c *Codegen) GetProgram() []Instruction {
	return c.pb
}

// emit appends one instruction to the program block
func (c *Codegen) emit(op Operation, arg int64, pos lexer.Position) {
	c.pb = append(c.pb, Instruction{Op: op, Arg: arg, Pos: pos})
}
