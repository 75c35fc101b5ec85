package rawsys

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestSyscall1Getpid(t *testing.T) {
	got := Syscall1(unix.SYS_GETPID, 0)
	if int(got) != os.Getpid() {
		t.Fatalf("getpid: got %d, want %d", got, os.Getpid())
	}
}

func TestSyscall4Prctl(t *testing.T) {
	want, err := unix.PrctlRetInt(unix.PR_GET_DUMPABLE, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("PrctlRetInt: %v", err)
	}
	got := Syscall4(unix.SYS_PRCTL, unix.PR_GET_DUMPABLE, 0, 0, 0)
	if int(got) != want {
		t.Fatalf("prctl(PR_GET_DUMPABLE): got %d, want %d", got, want)
	}
}

// TestErrorConvention checks that failures come back as -errno on every
// architecture, including the MIPS a3 flag path.
func TestErrorConvention(t *testing.T) {
	r := Syscall1(unix.SYS_CLOSE, ^uintptr(0))
	if errno := Errno(r); errno != unix.EBADF {
		t.Fatalf("close(-1): got raw %#x (errno %v), want EBADF", r, errno)
	}

	r = Syscall4(unix.SYS_PRCTL, ^uintptr(0), 0, 0, 0)
	if errno := Errno(r); errno != unix.EINVAL {
		t.Fatalf("prctl(-1): got raw %#x (errno %v), want EINVAL", r, errno)
	}
}

func TestErrnoRange(t *testing.T) {
	cases := []struct {
		raw  uintptr
		want unix.Errno
	}{
		{0, 0},
		{1, 0},
		{^uintptr(0), unix.EPERM},
		{^uintptr(0) - 8, unix.EBADF},
		{^uintptr(4094), unix.Errno(4095)},
		{^uintptr(4095), 0},
	}
	for _, tc := range cases {
		if got := Errno(tc.raw); got != tc.want {
			t.Errorf("Errno(%#x) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
