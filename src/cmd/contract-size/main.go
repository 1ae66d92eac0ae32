// Package main provides the contract-size CLI, which reports the bytecode
// size of every compiled contract under the build artifacts directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"contract-size/src/artifact"
	"contract-size/src/config"
	"contract-size/src/logger"
	"contract-size/src/ranking"
	"contract-size/src/report"
)

// errReported marks failures whose message has already been shown to the user.
var errReported = errors.New("reported")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contract-size",
	Short: "Report the bytecode size of compiled contracts",
	Long: `contract-size walks the build artifacts directory (artifacts/contracts),
measures the bytecode of every compiled contract and prints them largest first.

Contracts larger than 24 KB (24576 bytes) cannot be deployed and are flagged
with a warning. Exceeding the limit does not change the exit status.

Environment:
  CONTRACT_SIZE_ARTIFACTS_DIR  artifacts root (default artifacts/contracts)
  CONTRACT_SIZE_COMPILE_HINT   build command suggested when artifacts are missing
  CONTRACT_SIZE_STRICT_HEX     reject malformed bytecode hex (default true)
  CONTRACT_SIZE_LOG_LEVEL      debug, info, warn or error (default warn)
  CONTRACT_SIZE_LOG_FORMAT     text or json (default text)`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// run performs one reporting pass: discover artifacts, measure them and
// print the table. A missing artifacts root prints build guidance to stderr
// and returns an error wrapping errReported.
func run(cfg *config.Config, stdout, stderr io.Writer) error {
	log, err := logger.NewConsoleLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log.Debug("scanning %s", cfg.ArtifactsDir)
	records, err := artifact.Collect(cfg.ArtifactsDir, artifact.NewExtractor(log, !cfg.StrictHex))
	if err != nil {
		log.Debug("artifact discovery failed: %v", err)
		if werr := report.RenderError(stderr, cfg.CompileHint); werr != nil {
			return fmt.Errorf("failed to write guidance: %w", werr)
		}
		return fmt.Errorf("%w: %w", errReported, err)
	}

	within, over := ranking.Counts(ranking.Rank(records))
	log.Info("measured %d contracts (%d within limit, %d over)", len(records), within, over)

	return report.New(stdout).Render(records)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
