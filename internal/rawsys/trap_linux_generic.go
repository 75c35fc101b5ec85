//go:build linux && !(386 || amd64 || arm || arm64 || mips || mipsle || mips64 || mips64le || riscv64)

package rawsys

import "golang.org/x/sys/unix"

// Syscall1 traps into the kernel with one argument and returns the raw result.
//
// Architectures without a hand-written trap use x/sys, which still enters the
// kernel directly from Go assembly.
func Syscall1(trap, a1 uintptr) (r uintptr) {
	return Syscall4(trap, a1, 0, 0, 0)
}

// Syscall4 traps into the kernel with four arguments and returns the raw
// result.
func Syscall4(trap, a1, a2, a3, a4 uintptr) (r uintptr) {
	r, _, errno := unix.RawSyscall6(trap, a1, a2, a3, a4, 0, 0)
	if errno != 0 {
		return -uintptr(errno)
	}
	return r
}
