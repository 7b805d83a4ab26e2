package codegen

import (
	"errors"
)

var (
	ErrExpectedNumber   = errors.New("expected a number")
	ErrExpectedOperator = errors.New("expected an operator")
	ErrUnknownOperator  = errors.New("unknown operator")
)
