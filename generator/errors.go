package generator

import "fmt"

// StageError is a pipeline failure tagged with the terminal state it
// produced. All external-call errors are converted into one of these at
// the call site; nothing propagates raw to the caller.
type StageError struct {
	State State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(state State, format string, args ...any) *StageError {
	return &StageError{State: state, Err: fmt.Errorf(format, args...)}
}
