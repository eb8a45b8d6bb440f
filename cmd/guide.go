package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/quill-cli/internal/style"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Render a style guide from a reference text or saved fingerprint",
	Long: `Build the numeric style guide that 'quill rewrite' sends to the
generation backend.

Exactly one source is required:
  --style-ref FILE   analyze a reference text now
  --features FILE    reuse a fingerprint saved by 'quill analyze --out'`,
	Example: `  quill guide --author "Ernest Hemingway" --style-ref hemingway.txt
  quill guide --author "Jane Austen" --features austen.yaml --out austen-guide.md`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

var (
	flagGuideAuthor   string
	flagGuideStyleRef string
	flagGuideFeatures string
	flagGuideOut      string
)

func init() {
	guideCmd.Flags().StringVar(&flagGuideAuthor, "author", "", "Author name shown in the guide (default: author in quill.yaml)")
	guideCmd.Flags().StringVar(&flagGuideStyleRef, "style-ref", "", "Reference text to analyze")
	guideCmd.Flags().StringVar(&flagGuideFeatures, "features", "", "Fingerprint file written by 'quill analyze'")
	guideCmd.Flags().StringVar(&flagGuideOut, "out", "", "Write the guide to this file instead of stdout")
	guideCmd.MarkFlagsMutuallyExclusive("style-ref", "features")
	guideCmd.MarkFlagsOneRequired("style-ref", "features")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var fv style.FeatureVector
	if flagGuideFeatures != "" {
		fv, err = loadFingerprint(flagGuideFeatures)
	} else {
		fv, err = analyzeFile(flagGuideStyleRef)
	}
	if err != nil {
		return err
	}

	guide, err := guideBuilder(cfg).Build(&fv, resolveAuthor(flagGuideAuthor, cfg))
	if err != nil {
		return err
	}

	if flagGuideOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), guide)
		return nil
	}
	if err := writeOutputFile(flagGuideOut, []byte(guide+"\n"), outputLockTimeout); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Style guide written: %s", flagGuideOut))
	return nil
}

// loadFingerprint decodes a saved fingerprint file.
func loadFingerprint(path string) (style.FeatureVector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return style.FeatureVector{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	fv, err := style.DecodeFingerprint(data)
	if err != nil {
		return style.FeatureVector{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("fingerprint loaded", "path", path, "features", *fv)
	return *fv, nil
}
