package main

import (
	"context"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/b2sum/blake2/internal/log"
)

// Config holds the command line configuration
type Config struct {
	Check    bool
	Quiet    bool
	LogLevel string
	LogFile  string
}

func newRootCommand() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "b2sum [FILE]...",
		Short: "Print or check BLAKE2b-512 checksums",
		Long: `Print or check BLAKE2b-512 (64-byte) checksums.

With no FILE, or when FILE is -, read standard input. In check mode each
FILE is a list of "checksum  name" lines as produced by b2sum.`,
		Example: `  # Hash two files
  b2sum a.bin b.bin > sums.txt

  # Verify them later
  b2sum --check sums.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := log.New(cfg.LogFile, cfg.LogLevel, false)
			if err != nil {
				return err
			}
			defer backend.Close()
			logger := backend.GetLogger("b2sum")

			if len(args) == 0 {
				args = []string{"-"}
			}
			s := &summer{
				stdin: cmd.InOrStdin(),
				out:   cmd.OutOrStdout(),
				log:   logger,
				quiet: cfg.Quiet,
			}
			if cfg.Check {
				return s.checkFiles(args)
			}
			return s.sumFiles(args)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Check, "check", "c", false, "read checksums from the FILEs and check them")
	cmd.Flags().BoolVar(&cfg.Quiet, "quiet", false, "don't print OK for each successfully verified file")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "WARNING", "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "log to this file instead of stderr")

	return cmd
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(versioninfo.Short()),
	); err != nil {
		os.Exit(1)
	}
}
