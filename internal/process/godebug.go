package process

import "strings"

// hasGODEBUG reports whether the comma-separated GODEBUG value contains
// setting verbatim.
func hasGODEBUG(value, setting string) bool {
	for _, kv := range strings.Split(value, ",") {
		if strings.TrimSpace(kv) == setting {
			return true
		}
	}
	return false
}

// withGODEBUG returns env with setting appended to GODEBUG. Later settings win,
// so an existing contrary value is overridden.
func withGODEBUG(env []string, setting string) []string {
	out := make([]string, 0, len(env)+1)
	value := setting
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "GODEBUG="); ok {
			if v != "" {
				value = v + "," + setting
			}
			continue
		}
		out = append(out, kv)
	}
	return append(out, "GODEBUG="+value)
}
