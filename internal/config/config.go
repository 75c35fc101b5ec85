package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"time"
)

// Probe modes accepted by the sentinel probe command.
const (
	ProbeOnce  = "once"
	ProbeMulti = "multi"
)

// Config holds the settings of the sentinel CLI. Each command fills the
// fields it uses.
type Config struct {
	Threads     int
	ThreadDelay time.Duration
	WatchFor    time.Duration // 0 means until SIGINT/SIGTERM
	ProbeMode   string
	Version     string // set from ldflags at build time; empty in dev builds
}

// Validate checks the settings. Fails fast on the first error.
func (c *Config) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("thread count must not be negative, got %d", c.Threads)
	}
	if c.ThreadDelay < 0 {
		return fmt.Errorf("thread delay must not be negative, got %s", c.ThreadDelay)
	}
	if c.WatchFor < 0 {
		return fmt.Errorf("watch duration must not be negative, got %s", c.WatchFor)
	}
	switch c.ProbeMode {
	case "", ProbeOnce, ProbeMulti:
	default:
		return fmt.Errorf("unknown probe mode %q (want %s or %s)", c.ProbeMode, ProbeOnce, ProbeMulti)
	}
	return nil
}

// GenConfig holds the settings of the seedgen CLI.
type GenConfig struct {
	OutputPath string
	Package    string
}

// Validate checks that the output directory exists and the package name is
// a Go identifier.
func (c *GenConfig) Validate() error {
	if c.OutputPath == "" {
		return errors.New("output path is required")
	}
	if _, err := os.Stat(filepath.Dir(c.OutputPath)); err != nil {
		return fmt.Errorf("output directory not found: %w", err)
	}

	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}

	return nil
}
