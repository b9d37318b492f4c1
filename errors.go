package xmlformat

import "fmt"

// MalformedInputError is returned by the Decoder when the markup is not
// well-formed. Line is the 1-based line of the first error.
type MalformedInputError struct {
	Message string
	Line    int
	Err     error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed XML, %s at line %d", e.Message, e.Line)
}

// Unwrap returns the underlying parse error.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
