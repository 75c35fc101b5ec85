//go:build linux

package process

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Launch starts binaryPath as a child in its own process group and reaps it
// from a dedicated thread that also serves as its tracer. Every ptrace stop is
// resumed with the signal that caused it (the SIGTRAP after a traced exec is
// swallowed), so a child that is traced from exec, or that makes its parent
// its tracer with PTRACE_TRACEME, still runs to completion.
//
// The child's stdout is captured and available from Output once it exits; its
// stderr goes to ours.
func Launch(binaryPath string, opts Options) (*Manager, error) {
	m := &Manager{exited: make(chan struct{})}

	started := make(chan error, 1)
	go m.run(binaryPath, opts, started)
	if err := <-started; err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) run(binaryPath string, opts Options, started chan<- error) {
	// A tracee only reports to, and only accepts ptrace requests from, the
	// thread that forked it. The thread is retired with this goroutine.
	runtime.LockOSThread()

	r, w, err := os.Pipe()
	if err != nil {
		started <- fmt.Errorf("create stdout pipe: %w", err)
		return
	}

	cmd := exec.Command(binaryPath, opts.Args...)
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Stdout = w
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Ptrace:  opts.Traced,
		Setpgid: true,
	}

	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		started <- fmt.Errorf("launch %s: %w", binaryPath, err)
		return
	}
	w.Close()
	m.pid = cmd.Process.Pid
	started <- nil

	outDone := make(chan struct{})
	go func() {
		m.output, _ = io.ReadAll(r)
		r.Close()
		close(outDone)
	}()

	m.exitCode, m.exitErr = m.reap()
	<-outDone
	_ = cmd.Process.Release()
	close(m.exited)
}

// reap waits on the child's process group until the group leader is gone.
func (m *Manager) reap() (int, error) {
	for {
		var ws unix.WaitStatus
		wpid, err := unix.Wait4(-m.pid, &ws, unix.WALL, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return -1, fmt.Errorf("wait for pid %d: %w", m.pid, err)
		}

		switch {
		case ws.Stopped():
			sig := ws.StopSignal()
			if sig == unix.SIGTRAP {
				sig = 0
			}
			_ = unix.PtraceCont(wpid, int(sig))
		case wpid != m.pid:
			// A traced thread of the child went away; the leader reports last.
		case ws.Exited():
			if code := ws.ExitStatus(); code != 0 {
				return code, fmt.Errorf("exit status %d", code)
			}
			return 0, nil
		case ws.Signaled():
			return -1, fmt.Errorf("killed by signal: %v", ws.Signal())
		}
	}
}

// Signal sends sig to the child unless it has already exited.
func (m *Manager) Signal(sig unix.Signal) {
	select {
	case <-m.exited:
	default:
		_ = unix.Kill(m.pid, sig)
	}
}

// Stop sends SIGTERM and waits up to 10 seconds for the process to exit gracefully.
// If it has not exited by then, SIGKILL is sent unconditionally.
func (m *Manager) Stop() error {
	m.Signal(unix.SIGTERM)

	select {
	case <-m.exited:
		return m.exitErr
	case <-time.After(10 * time.Second):
		m.Signal(unix.SIGKILL)
		<-m.exited
		return m.exitErr
	}
}
