package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("invalid XML input")
	ErrTooDeep = fmt.Errorf("%w: maximum element depth exceeded", ErrParse)
)

// InvalidXMLError reports malformed input. It echoes the offending
// input for diagnostics; no structural repair is attempted and no
// partial result is returned.
type InvalidXMLError struct {
	Input string
	Err   error
}

func (e *InvalidXMLError) Error() string {
	return fmt.Sprintf("%v: %v: %q", ErrParse, e.Err, e.Input)
}

func (e *InvalidXMLError) Unwrap() error {
	return ErrParse
}
