package process

// Options controls how Launch starts the child.
type Options struct {
	Args []string
	Env  []string // appended to the current environment

	// Traced starts the child with PTRACE_TRACEME set before exec, the way a
	// debugger launches its target.
	Traced bool
}

// Manager monitors the lifecycle of a launched child process.
type Manager struct {
	pid      int
	exited   chan struct{}
	exitCode int
	exitErr  error
	output   []byte
}

// Pid returns the child's process ID.
func (m *Manager) Pid() int {
	return m.pid
}

// Wait blocks until the child process exits and returns its exit error (nil for exit code 0).
func (m *Manager) Wait() error {
	<-m.exited
	return m.exitErr
}

// Exited returns a channel that is closed when the process exits.
func (m *Manager) Exited() <-chan struct{} {
	return m.exited
}

// ExitCode returns the child's exit status, or -1 if it was killed by a
// signal. Only valid once Exited is closed.
func (m *Manager) ExitCode() int {
	return m.exitCode
}

// Output returns everything the child wrote to stdout. Only valid once Exited
// is closed.
func (m *Manager) Output() []byte {
	return m.output
}
