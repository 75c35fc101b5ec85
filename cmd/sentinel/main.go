package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/tusharlock10/sentinel-guard/antitamper"
	"github.com/tusharlock10/sentinel-guard/internal/config"
	"github.com/tusharlock10/sentinel-guard/internal/process"
	"github.com/tusharlock10/sentinel-guard/internal/sentinel"
)

// version is set at build time via -ldflags "-X main.version=<version>"
var version string

func init() {
	// A debugger that launches this program traces its main thread, so the
	// main-thread checks must run there.
	runtime.LockOSThread()
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "sentinel",
		Short:        "Sentinel Guard: refuses to run under a ptrace debugger",
		Version:      fmt.Sprintf("%s (build %s)", version, antitamper.BuildID),
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		noReexec, _ := cmd.Flags().GetBool("no-reexec")
		if noReexec {
			return nil
		}
		// Armed threads stop on every signal, so keep the runtime from sending
		// preemption signals.
		return process.EnsureGODEBUG("asyncpreemptoff=1")
	}
	rootCmd.PersistentFlags().Bool("no-reexec", false, "Do not re-exec with GODEBUG=asyncpreemptoff=1")

	multiCmd := &cobra.Command{
		Use:   "multi",
		Short: "Run the multi-check twice around a timestamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSentinel(&config.Config{})
			if err != nil {
				return err
			}
			s.RunMulti()
			return nil
		},
	}

	threadsCmd := &cobra.Command{
		Use:   "threads",
		Short: "Check the main thread and a set of worker threads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			delay, _ := cmd.Flags().GetDuration("delay")
			s, err := newSentinel(&config.Config{Threads: count, ThreadDelay: delay})
			if err != nil {
				return err
			}
			s.RunThreads()
			return nil
		},
	}
	threadsCmd.Flags().Int("count", 10, "Number of worker threads")
	threadsCmd.Flags().Duration("delay", 10*time.Millisecond, "Thread i sleeps i*delay between its checks")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the multi-check every 5 to 10 seconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watchFor, _ := cmd.Flags().GetDuration("for")
			s, err := newSentinel(&config.Config{WatchFor: watchFor})
			if err != nil {
				return err
			}
			ctx, cancel := sentinel.SetupSignalHandler()
			defer cancel()
			s.RunWatch(ctx)
			return nil
		},
	}
	watchCmd.Flags().Duration("for", 0, "Stop after this long (0 runs until SIGINT/SIGTERM)")

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Relaunch this binary with and without a tracer and verify the checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSentinel(&config.Config{})
			if err != nil {
				return err
			}
			if err := s.SelfTest(); err != nil {
				return fmt.Errorf("self-test failed: %w", err)
			}
			return nil
		},
	}

	probeCmd := &cobra.Command{
		Use:    "probe",
		Short:  "Run two checks on the main thread and print a marker",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			s, err := newSentinel(&config.Config{ProbeMode: mode})
			if err != nil {
				return err
			}
			return s.Probe(mode)
		},
	}
	probeCmd.Flags().String("mode", config.ProbeOnce, "Check to run: once or multi")

	rootCmd.AddCommand(multiCmd, threadsCmd, watchCmd, selftestCmd, probeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSentinel(cfg *config.Config) (*sentinel.Sentinel, error) {
	cfg.Version = version
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return sentinel.New(cfg), nil
}
