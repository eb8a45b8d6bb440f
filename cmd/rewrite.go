package cmd

import (
	"fmt"
	"strings"

	"github.com/kamusis/quill-cli/internal/config"
	"github.com/kamusis/quill-cli/internal/generate"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a source text in the style of a reference text",
	Long: `Analyze the reference text, build its style guide, and ask the
generation backend to rewrite the source text under that guide.

The backend is chosen from (highest precedence first):
  --provider / --model / --base-url flags
  QUILL_GENERATE_* environment variables
  ~/.quill/.env
  the generate section of ~/.quill/quill.yaml`,
	Example: `  quill rewrite --source draft.txt --style-ref hemingway.txt --author "Ernest Hemingway"
  quill rewrite --source draft.txt --style-ref austen.txt --author "Jane Austen" --provider openai --model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runRewrite,
}

var (
	flagRewriteSource   string
	flagRewriteStyleRef string
	flagRewriteAuthor   string
	flagRewriteOutput   string
	flagRewriteProvider string
	flagRewriteModel    string
	flagRewriteBaseURL  string
)

func init() {
	rewriteCmd.Flags().StringVar(&flagRewriteSource, "source", "", "Text to rewrite")
	rewriteCmd.Flags().StringVar(&flagRewriteStyleRef, "style-ref", "", "Reference text whose style is imitated")
	rewriteCmd.Flags().StringVar(&flagRewriteAuthor, "author", "", "Author of the reference text (default: author in quill.yaml)")
	rewriteCmd.Flags().StringVar(&flagRewriteOutput, "output", "", "File for the rewritten text (default: output in quill.yaml)")
	rewriteCmd.Flags().StringVar(&flagRewriteProvider, "provider", "", "Generation provider: ollama or openai")
	rewriteCmd.Flags().StringVar(&flagRewriteModel, "model", "", "Generation model name")
	rewriteCmd.Flags().StringVar(&flagRewriteBaseURL, "base-url", "", "Generation backend base URL")
	_ = rewriteCmd.MarkFlagRequired("source")
	_ = rewriteCmd.MarkFlagRequired("style-ref")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	author := resolveAuthor(flagRewriteAuthor, cfg)
	output := flagRewriteOutput
	if output == "" {
		output = cfg.Output
	}
	output, err = config.ExpandPath(output)
	if err != nil {
		return err
	}

	source, err := readTextFile(flagRewriteSource)
	if err != nil {
		return err
	}
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("%s: %w", flagRewriteSource, generate.ErrEmptySource)
	}

	fv, err := analyzeFile(flagRewriteStyleRef)
	if err != nil {
		return err
	}
	guide, err := guideBuilder(cfg).Build(&fv, author)
	if err != nil {
		return err
	}

	provider, err := rewriteProvider(cfg)
	if err != nil {
		return err
	}
	logger.Debug("generation backend selected", "model", provider.ModelID())

	out := cmd.OutOrStdout()
	printSection("Style Guide")
	fmt.Fprintln(out, guide)
	printSection("Original Text")
	fmt.Fprintln(out, strings.TrimSpace(source))

	printInfo("", fmt.Sprintf("Rewriting with %s ...", provider.ModelID()))
	rewritten, err := generate.Rewrite(cmd.Context(), provider, source, guide, author)
	if err != nil {
		return err
	}

	printSection("Rewritten Text")
	fmt.Fprintln(out, rewritten)
	fmt.Fprintln(out)

	if err := writeOutputFile(output, []byte(rewritten+"\n"), outputLockTimeout); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Rewritten text saved: %s", output))
	return nil
}

// rewriteProvider resolves the generation config and applies flag overrides.
func rewriteProvider(cfg *config.Config) (generate.Provider, error) {
	gcfg, err := generate.LoadConfig(cfg.Generate)
	if err != nil {
		return nil, err
	}
	if flagRewriteProvider != "" {
		gcfg.Provider = flagRewriteProvider
	}
	if flagRewriteModel != "" {
		gcfg.Model = flagRewriteModel
	}
	if flagRewriteBaseURL != "" {
		gcfg.BaseURL = flagRewriteBaseURL
	}
	return generate.NewFromConfig(gcfg)
}
