//go:build linux && (386 || amd64 || arm || arm64 || mips || mipsle || mips64 || mips64le || riscv64)

package rawsys

// Syscall1 traps into the kernel with one argument and returns the raw result.
//
// The caller is responsible for passing a valid syscall number; the call is
// not retried on EINTR and does not tell the scheduler it may block.
func Syscall1(trap, a1 uintptr) (r uintptr)

// Syscall4 traps into the kernel with four arguments and returns the raw
// result. The same caveats as Syscall1 apply.
func Syscall4(trap, a1, a2, a3, a4 uintptr) (r uintptr)
