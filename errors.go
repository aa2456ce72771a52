package simplertf

import (
	"errors"
	"fmt"
)

// Sentinel errors for common RTF generation failure conditions.
var (
	ErrNoParagraph     = errors.New("simplertf: no paragraph is open")
	ErrUnknownPreset   = errors.New("simplertf: unknown layout preset")
	ErrUnknownStyle    = errors.New("simplertf: style not in stylesheet")
	ErrInvalidState    = errors.New("simplertf: document state is inconsistent")
	ErrInvalidParam    = errors.New("simplertf: invalid parameter")
	ErrUnsupportedChar = errors.New("simplertf: character cannot be escaped")
)

// RTFError represents an error that occurred during a specific document
// operation. It wraps an underlying error and includes the operation name
// for context.
type RTFError struct {
	Op  string // operation name, e.g. "Note", "SetLayout"
	Err error  // underlying error
}

func (e *RTFError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("simplertf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("simplertf.%s: unknown error", e.Op)
}

func (e *RTFError) Unwrap() error {
	return e.Err
}

// newRTFError creates a new RTFError wrapping the given error with operation context.
func newRTFError(op string, err error) *RTFError {
	return &RTFError{Op: op, Err: err}
}
