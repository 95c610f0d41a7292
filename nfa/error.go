package nfa

import (
	"errors"
	"fmt"
)

// Sentinel errors, mirroring the teacher's nfa/error.go sentinel-plus-wrapper
// style.
var (
	ErrAlreadyPatched = errors.New("nfa: state has no dangling transition left to patch")
	ErrTooManyStates  = errors.New("nfa: state arena exceeds addressable range")
)

// BuildError wraps a construction failure with the offending state.
type BuildError struct {
	State   StateID
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: state %d: %s", e.State, e.Message)
}
