package core

import "fmt"

// InputError is returned when standard input cannot be read.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read input: %v", e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
