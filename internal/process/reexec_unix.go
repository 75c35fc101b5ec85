//go:build unix

package process

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// EnsureGODEBUG replaces the running program with a fresh copy of itself that
// has setting in GODEBUG. It returns nil without doing anything when the
// setting is already present, and otherwise only returns on error.
func EnsureGODEBUG(setting string) error {
	if hasGODEBUG(os.Getenv("GODEBUG"), setting) {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := unix.Exec(exe, os.Args, withGODEBUG(os.Environ(), setting)); err != nil {
		return fmt.Errorf("re-exec %s: %w", exe, err)
	}
	return nil
}
