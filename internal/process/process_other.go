//go:build !linux

package process

import "errors"

// Launch is only implemented on Linux, where the anti-debug checks exist.
func Launch(binaryPath string, opts Options) (*Manager, error) {
	return nil, errors.ErrUnsupported
}

// Stop is a no-op outside Linux.
func (m *Manager) Stop() error {
	return nil
}
