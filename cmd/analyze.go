package cmd

import (
	"fmt"

	"github.com/kamusis/quill-cli/internal/style"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Measure the style fingerprint of a reference text",
	Long: `Analyze a reference text and print its style fingerprint: sentence
statistics, vocabulary richness, part-of-speech shares, punctuation habits
and Flesch Reading Ease.

The fingerprint can be saved with --out and later turned into a guide with
'quill guide --features FILE'.`,
	Example: `  quill analyze --style-ref hemingway.txt
  quill analyze --style-ref austen.txt --format json --out austen.json`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var (
	flagAnalyzeStyleRef string
	flagAnalyzeFormat   string
	flagAnalyzeOut      string
)

func init() {
	analyzeCmd.Flags().StringVar(&flagAnalyzeStyleRef, "style-ref", "", "Reference text whose style is measured")
	analyzeCmd.Flags().StringVar(&flagAnalyzeFormat, "format", style.FormatYAML, "Output format: yaml or json")
	analyzeCmd.Flags().StringVar(&flagAnalyzeOut, "out", "", "Write the fingerprint to this file instead of stdout")
	_ = analyzeCmd.MarkFlagRequired("style-ref")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	fv, err := analyzeFile(flagAnalyzeStyleRef)
	if err != nil {
		return err
	}
	data, err := style.EncodeFingerprint(fv, flagAnalyzeFormat)
	if err != nil {
		return err
	}

	if flagAnalyzeOut == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeOutputFile(flagAnalyzeOut, data, outputLockTimeout); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Fingerprint written: %s", flagAnalyzeOut))
	if !fv.Measurable() {
		printWarn("", "reference text has no measurable sentences; the fingerprint is all zeros")
	}
	return nil
}
