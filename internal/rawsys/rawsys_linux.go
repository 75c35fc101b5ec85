package rawsys

import "golang.org/x/sys/unix"

// Syscall and request numbers for the build architecture.
const (
	SysPtrace    = unix.SYS_PTRACE
	SysExitGroup = unix.SYS_EXIT_GROUP

	PtraceTraceme = unix.PTRACE_TRACEME
)

// Errno decodes a raw result. It returns 0 unless r falls in the kernel's
// [-4095, -1] error range.
func Errno(r uintptr) unix.Errno {
	if r >= ^uintptr(4094) {
		return unix.Errno(-r)
	}
	return 0
}
