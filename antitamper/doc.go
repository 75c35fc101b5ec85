// Package antitamper terminates the process when a debugger is attached to,
// or tries to attach to, the calling thread.
//
// Detection relies on PTRACE_TRACEME. The first request from a thread that
// has no tracer succeeds and makes the parent its tracer; every later request
// fails. A first request that fails means a tracer was already there, and a
// later request that succeeds means somebody is tampering with the result.
// Both end the process through exit_group(0) with no message.
//
// The request is issued with a raw trap (see internal/rawsys), so library
// interposition cannot fake the answer. MultiTraceMeOrDie repeats the check in
// rounds whose lengths are fixed per build and folds each result into a
// checksum that is recomputed and compared at the end of every round, so
// patching a single branch is not enough to get past it.
//
// Call TraceMeOrDie or MultiTraceMeOrDie at the start of every goroutine that
// runs on a thread of its own, and again wherever a later check is wanted.
// The kernel keeps tracer state per thread, and so does this package.
//
// An armed thread is traced by the parent process, so each signal delivered
// to it stops it until the parent reacts. Run binaries that use this package
// with GODEBUG=asyncpreemptoff=1 so the Go runtime does not preempt goroutines
// with signals.
package antitamper

//go:generate go run ../cmd/seedgen --out rounds_gen.go --package antitamper
