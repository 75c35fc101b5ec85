// Package rawsys issues Linux system calls with a single trap instruction.
//
// Nothing here goes through libc or the Go syscall package: the trap is
// written in assembly for each supported architecture, so symbol
// interposition (LD_PRELOAD and friends) cannot see or alter the call. Only
// the two call shapes used by the anti-debug checks exist.
//
// Every variant reports failure the same way, as -errno in the returned word.
// On MIPS the kernel signals failure through a3 and returns a positive errno
// in v0; the assembly negates it so callers never see the difference.
package rawsys
