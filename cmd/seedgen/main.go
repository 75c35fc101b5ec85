// Command seedgen rewrites the build-time constants of the antitamper package.
// It is run by go generate from the antitamper directory.
package main

import (
	"fmt"
	"log"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"github.com/tusharlock10/sentinel-guard/internal/config"
	"github.com/tusharlock10/sentinel-guard/internal/seedgen"
)

func main() {
	// Wipe the locked buffers if we are interrupted mid-draw.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	rootCmd := &cobra.Command{
		Use:          "seedgen",
		Short:        "Generate a fresh seed table and round layout",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().String("out", "rounds_gen.go", "Path of the generated Go file")
	rootCmd.Flags().String("package", "antitamper", "Package clause of the generated file")

	if err := rootCmd.Execute(); err != nil {
		memguard.SafeExit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	pkg, _ := cmd.Flags().GetString("package")

	cfg := &config.GenConfig{
		OutputPath: out,
		Package:    pkg,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	t, err := seedgen.Generate(cfg)
	if err != nil {
		return err
	}

	total := 0
	for _, n := range t.Iterations {
		total += n
	}
	log.Printf("seedgen: wrote %s (build %s, %d rounds, %d checks)", out, t.BuildID, len(t.Iterations), total)
	return nil
}
