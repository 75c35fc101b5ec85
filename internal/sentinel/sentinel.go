package sentinel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tusharlock10/sentinel-guard/antitamper"
	"github.com/tusharlock10/sentinel-guard/internal/config"
	"github.com/tusharlock10/sentinel-guard/internal/process"
)

// ProbeMarker is printed by Probe once its checks have passed.
const ProbeMarker = "probe: armed"

// probeTimeout bounds each child launched by SelfTest.
const probeTimeout = 30 * time.Second

// Sentinel runs the demo flows behind the sentinel CLI. Every flow expects to
// be called from the main goroutine locked to the main thread.
type Sentinel struct {
	config *config.Config

	mu  sync.Mutex // serializes writes to out from checking threads
	out io.Writer

	// probeCmd describes how SelfTest relaunches this program in probe mode.
	probeCmd func(mode string) (string, process.Options, error)
}

// New creates a new Sentinel that writes its results to stdout.
func New(cfg *config.Config) *Sentinel {
	return &Sentinel{
		config:   cfg,
		out:      os.Stdout,
		probeCmd: selfProbe,
	}
}

// SetupSignalHandler installs SIGINT/SIGTERM handlers and returns a context that
// is cancelled when a signal is received.
func SetupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()
	return ctx, cancel
}

func (s *Sentinel) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// RunMulti runs the multi-check, prints the time, runs it again and reports
// completion.
func (s *Sentinel) RunMulti() {
	antitamper.MultiTraceMeOrDie()
	s.printf("Time: %d\n", nowMillis())
	antitamper.MultiTraceMeOrDie()
	s.printf("Example complete!\n")
}

// RunThreads checks the main thread, then starts config.Threads threads that
// each check, sleep i*ThreadDelay and check again before printing the time.
func (s *Sentinel) RunThreads() {
	antitamper.TraceMeOrDie()

	var wg sync.WaitGroup
	for i := 0; i < s.config.Threads; i++ {
		wg.Add(1)
		antitamper.Go(func(g *antitamper.Guard) {
			defer wg.Done()
			g.TraceMeOrDie()
			time.Sleep(time.Duration(i) * s.config.ThreadDelay)
			g.TraceMeOrDie()
			s.printf("Time in thread %d: %d\n", i, nowMillis())
		})
	}
	wg.Wait()

	s.printf("Time in main thread: %d\n", nowMillis())
}

// RunWatch runs the periodic monitor until ctx is cancelled or, when
// config.WatchFor is set, until that much time has passed.
func (s *Sentinel) RunWatch(ctx context.Context) {
	if s.config.WatchFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.WatchFor)
		defer cancel()
	}

	m := antitamper.NewMonitor()
	log.Printf("Watching for debuggers (build %s)", antitamper.BuildID)
	m.Start(ctx)
	log.Printf("Monitor stopped after %d passes", m.Passes())
}

// Probe runs two checks of the given mode on the calling thread and prints
// ProbeMarker. A debugged process never reaches the print.
func (s *Sentinel) Probe(mode string) error {
	switch mode {
	case config.ProbeOnce:
		antitamper.TraceMeOrDie()
		antitamper.TraceMeOrDie()
	case config.ProbeMulti:
		antitamper.MultiTraceMeOrDie()
		antitamper.MultiTraceMeOrDie()
	default:
		return fmt.Errorf("unknown probe mode %q", mode)
	}
	s.printf("%s\n", ProbeMarker)
	return nil
}

// SelfTest relaunches this program in probe mode for every check, once
// untraced and once traced from exec the way a debugger starts its target.
// The untraced probe must print ProbeMarker; the traced one must vanish with
// status 0 and print nothing.
func (s *Sentinel) SelfTest() error {
	var errs []error
	for _, mode := range []string{config.ProbeOnce, config.ProbeMulti} {
		for _, traced := range []bool{false, true} {
			err := s.runProbe(mode, traced)
			if err != nil {
				log.Printf("FAIL %s traced=%t: %v", mode, traced, err)
				errs = append(errs, err)
				continue
			}
			log.Printf("ok   %s traced=%t", mode, traced)
		}
	}
	return errors.Join(errs...)
}

func (s *Sentinel) runProbe(mode string, traced bool) error {
	path, opts, err := s.probeCmd(mode)
	if err != nil {
		return fmt.Errorf("resolve probe command: %w", err)
	}
	opts.Traced = traced

	m, err := process.Launch(path, opts)
	if err != nil {
		return fmt.Errorf("launch %s probe: %w", mode, err)
	}
	select {
	case <-m.Exited():
	case <-time.After(probeTimeout):
		_ = m.Stop()
		return fmt.Errorf("%s probe (traced=%t) did not exit within %s", mode, traced, probeTimeout)
	}

	armed := bytes.Contains(m.Output(), []byte(ProbeMarker))
	if !traced {
		if err := m.Wait(); err != nil {
			return fmt.Errorf("untraced %s probe failed: %w", mode, err)
		}
		if !armed {
			return fmt.Errorf("untraced %s probe did not arm", mode)
		}
		return nil
	}

	if armed {
		return fmt.Errorf("traced %s probe was not detected", mode)
	}
	if code := m.ExitCode(); code != 0 {
		return fmt.Errorf("traced %s probe exited with status %d, want 0", mode, code)
	}
	return nil
}

func selfProbe(mode string) (string, process.Options, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", process.Options{}, err
	}
	return exe, process.Options{
		Args: []string{"probe", "--mode", mode, "--no-reexec"},
		Env:  []string{"GODEBUG=asyncpreemptoff=1"},
	}, nil
}
