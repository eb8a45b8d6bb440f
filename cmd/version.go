package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// taggerName identifies the segmentation and tagging backend compiled in.
const taggerName = "prose/v2 (embedded perceptron model)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show quill version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Version:    %s\n", version)
	fmt.Fprintf(out, "Commit:     %s\n", valueOrNA(commit))
	fmt.Fprintf(out, "Build Date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(out, "Tagger:     %s\n", taggerName)
	fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

func valueOrNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
