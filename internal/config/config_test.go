package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero", Config{}, false},
		{"threads", Config{Threads: 10, ThreadDelay: 10 * time.Millisecond}, false},
		{"probe once", Config{ProbeMode: ProbeOnce}, false},
		{"probe multi", Config{ProbeMode: ProbeMulti}, false},
		{"negative threads", Config{Threads: -1}, true},
		{"negative delay", Config{ThreadDelay: -time.Second}, true},
		{"negative watch", Config{WatchFor: -time.Second}, true},
		{"bad probe", Config{ProbeMode: "twice"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGenConfigValidate(t *testing.T) {
	dir := t.TempDir()

	ok := GenConfig{OutputPath: filepath.Join(dir, "rounds_gen.go"), Package: "antitamper"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	missing := GenConfig{Package: "antitamper"}
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for empty output path")
	}

	noDir := GenConfig{OutputPath: filepath.Join(dir, "nope", "rounds_gen.go"), Package: "antitamper"}
	if err := noDir.Validate(); err == nil {
		t.Fatal("expected error for missing output directory")
	}

	badPkg := GenConfig{OutputPath: ok.OutputPath, Package: "anti-tamper"}
	if err := badPkg.Validate(); err == nil {
		t.Fatal("expected error for invalid package name")
	}
}
