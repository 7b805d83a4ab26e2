package assembly

import "errors"

// Assembly interface defines methods for generating and building assembly code.
type Assembly interface {
	Generate() error
	GetCode() string
	Build() error
}

var ErrUnsupportedOperation = errors.New("unsupported operation")
