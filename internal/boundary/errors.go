package boundary

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrPanic is the sentinel wrapped by every failure recovered from a panic.
var ErrPanic = errors.New("panic in guarded subtree")

// PanicError carries the value a guarded subtree panicked with.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanic, e.Value)
}

func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrPanic, err}
	}
	return []error{ErrPanic}
}

// contain runs fn and converts a panic into a *PanicError. It never calls
// the reporter: the caller does that once contain has returned, so a panic
// raised by the reporter itself is not swallowed here.
func contain(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}

// stackOf returns the captured stack for err, if it came from a panic.
func stackOf(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
