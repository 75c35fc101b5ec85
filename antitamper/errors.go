package antitamper

import (
	"errors"
	"syscall"
)

// ErrAlreadyTraced is matched by every error RequestTrace returns when the
// kernel refuses PTRACE_TRACEME.
var ErrAlreadyTraced = errors.New("already traced")

// TraceError carries the errno of a refused PTRACE_TRACEME request.
type TraceError struct {
	Errno syscall.Errno
}

func (e *TraceError) Error() string {
	return "ptrace(PTRACE_TRACEME): already traced: " + e.Errno.Error()
}

// Is reports whether target is ErrAlreadyTraced.
func (e *TraceError) Is(target error) bool {
	return target == ErrAlreadyTraced
}

func (e *TraceError) Unwrap() error {
	return e.Errno
}
