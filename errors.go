package regexgen

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced at the Builder boundary (spec §7), mirroring the
// teacher's nfa package (ErrInvalidConfig et al. in
// _examples/coregx-coregex/nfa/error.go).
var (
	// ErrEmptyInput indicates no test cases were supplied.
	ErrEmptyInput = errors.New("regexgen: empty input set")

	// ErrInvalidConfig indicates a threshold option was set below its
	// minimum (e.g. min_repetitions or min_substring_length < 1).
	ErrInvalidConfig = errors.New("regexgen: invalid configuration")

	// ErrIO indicates a test-case file could not be read.
	ErrIO = errors.New("regexgen: I/O failure reading test cases")
)

// BuildError wraps a sentinel error with the pipeline stage it occurred in,
// mirroring the teacher's CompileError{Pattern, Err} wrapper.
type BuildError struct {
	Stage string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("regexgen: %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
