package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "quill",
	Short:        "Quill — literary style fingerprinting and style-guided rewriting",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Quill measures the style of a reference text, turns the measurements
into a numeric style guide, and asks a generation backend to rewrite a
source text under that guide.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger = newLogger(os.Stderr, flagDebug)
	},
}

var (
	flagDebug bool
	// logger is replaced in PersistentPreRun; commands log through it.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to stderr")
}

// newLogger returns a text logger tagged with a fresh run ID. Without debug
// only warnings and errors are written.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", uuid.NewString())
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
