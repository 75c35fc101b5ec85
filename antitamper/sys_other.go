//go:build !linux

package antitamper

import (
	"errors"
	"os"
)

// The checks are Linux-only; elsewhere every Guard is inert.
const supported = false

// RequestTrace always fails with errors.ErrUnsupported outside Linux.
func RequestTrace() error {
	return errors.ErrUnsupported
}

// Terminate exits the process with status 0. It never returns.
func Terminate() {
	os.Exit(0)
}

func threadID() int {
	return 0
}

func threadStart(tid int) uint64 {
	return 0
}
