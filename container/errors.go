package container

import "fmt"

// Error carries the operation that failed alongside its cause, so that
// adapter failures read as "opening dataset \"x\": ..." all the way up.
type Error struct {
	Context string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WrapError annotates cause with the failing operation. It passes a nil
// cause through untouched, so call sites can wrap unconditionally.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{
		Context: context,
		Cause:   cause,
	}
}
