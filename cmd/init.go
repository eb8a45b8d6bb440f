package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/quill-cli/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.quill with a default config and .env template",
	Long: `Initialize quill's home directory at ~/.quill/.

Writes quill.yaml with default guide and generation settings, and a .env
template for QUILL_GENERATE_* secrets. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var flagInitAuthor string

func init() {
	initCmd.Flags().StringVar(&flagInitAuthor, "author", "", "Default author name written to quill.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.quill directory ─────────────────────────────────────────
	quillDir, err := config.QuillDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 2. Create ~/.quill/ if it doesn't exist ───────────────────────────────
	if err := os.MkdirAll(quillDir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", quillDir, err)
	}
	printOK("", fmt.Sprintf("Quill directory ready: %s", quillDir))

	// ── 3. Write quill.yaml if missing ────────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		cfg.Author = flagInitAuthor
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 4. Validate the final config ──────────────────────────────────────────
	if _, err := config.Load(); err != nil {
		return err
	}

	// ── 5. .env template ──────────────────────────────────────────────────────
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		if err := config.EnsureDotEnvTemplate(); err != nil {
			return err
		}
		printOK("", fmt.Sprintf(".env template written: %s", envPath))
	} else {
		printSkip("", fmt.Sprintf(".env already exists: %s", envPath))
	}

	fmt.Println()
	fmt.Println("Next: quill rewrite --source FILE --style-ref FILE --author NAME")
	return nil
}
