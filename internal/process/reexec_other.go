//go:build !unix

package process

// EnsureGODEBUG does nothing on platforms without exec.
func EnsureGODEBUG(setting string) error {
	return nil
}
