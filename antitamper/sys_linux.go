//go:build linux

package antitamper

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/tusharlock10/sentinel-guard/internal/rawsys"
)

const supported = true

// RequestTrace issues ptrace(PTRACE_TRACEME, 0, 0, 0) directly to the kernel.
// It returns nil when the calling thread had no tracer and now has one, and a
// *TraceError otherwise.
//
// RequestTrace has a lasting effect on the thread: prefer TraceMeOrDie, which
// keeps track of it.
func RequestTrace() error {
	r := rawsys.Syscall4(rawsys.SysPtrace, rawsys.PtraceTraceme, 0, 0, 0)
	if r == 0 {
		return nil
	}
	return &TraceError{Errno: rawsys.Errno(r)}
}

// Terminate ends all threads of the process with exit_group(0). Deferred
// calls, finalizers and buffered output are skipped. It never returns.
func Terminate() {
	// Loop in case a seccomp filter turns exit_group into an error return.
	for {
		rawsys.Syscall1(rawsys.SysExitGroup, 0)
	}
}

func threadID() int {
	return unix.Gettid()
}

// threadStart returns the start time of thread tid, or 0 if /proc cannot tell.
// Together with the ID it names a thread for as long as the system is up.
func threadStart(tid int) uint64 {
	stat, err := os.ReadFile(fmt.Sprintf("/proc/self/task/%d/stat", tid))
	if err != nil {
		return 0
	}
	start, err := parseStartTime(stat)
	if err != nil {
		return 0
	}
	return start
}

// parseStartTime extracts field 22 (starttime) of a /proc stat line. The
// command name in field 2 may itself contain spaces and parentheses, so fields
// are counted from the last ')'.
func parseStartTime(stat []byte) (uint64, error) {
	i := bytes.LastIndexByte(stat, ')')
	if i < 0 {
		return 0, errors.New("stat: no command name")
	}
	fields := bytes.Fields(stat[i+1:])
	// fields[0] is field 3 (state).
	const idx = 22 - 3
	if len(fields) <= idx {
		return 0, fmt.Errorf("stat: %d fields after command name, want > %d", len(fields), idx)
	}
	start, err := strconv.ParseUint(string(fields[idx]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stat: starttime: %w", err)
	}
	return start, nil
}
