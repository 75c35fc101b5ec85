package process

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// TracerPID returns the ID of the task tracing pid's main thread, or 0 when it
// is not traced. A pid of 0 means the calling process.
func TracerPID(pid int) (int, error) {
	path := "/proc/self/status"
	if pid > 0 {
		path = fmt.Sprintf("/proc/%d/status", pid)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		v, ok := strings.CutPrefix(sc.Text(), "TracerPid:")
		if !ok {
			continue
		}
		tracer, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("parse TracerPid %q: %w", v, err)
		}
		return tracer, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return 0, fmt.Errorf("no TracerPid in %s", path)
}
