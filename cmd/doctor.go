package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kamusis/quill-cli/internal/config"
	"github.com/kamusis/quill-cli/internal/generate"
	"github.com/spf13/cobra"
)

const doctorPingTimeout = 5 * time.Second

// doctorProbe is analyzed to confirm the tagging model loads and works.
const doctorProbe = "The quick brown fox jumps over the lazy dog."

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that quill's configuration, tagging model and generation backend
are usable. Run this command when something seems wrong, or before filing a
bug report.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("quill doctor")
	fmt.Println()

	// ── Check 1: quill.yaml ───────────────────────────────────────────────────
	fmt.Println("[ quill.yaml ]")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		failD("cannot determine home directory: %v", err)
	}
	cfg := config.DefaultConfig()
	if err == nil {
		if _, statErr := os.Stat(cfgPath); os.IsNotExist(statErr) {
			printMiss("", fmt.Sprintf("%s not found — using defaults (run 'quill init' to create it)", cfgPath))
		} else if loaded, loadErr := config.Load(); loadErr != nil {
			failD("cannot parse quill.yaml: %v", loadErr)
		} else {
			cfg = loaded
			printOK("", fmt.Sprintf("valid YAML: %s", cfgPath))
		}
	}
	if cfg.Author == "" {
		printInfo("", "no default author; pass --author to guide and rewrite")
	}
	fmt.Println()

	// ── Check 2: .env ─────────────────────────────────────────────────────────
	fmt.Println("[ .env ]")
	if envPath, err := config.DotEnvPath(); err != nil {
		failD("cannot determine .env path: %v", err)
	} else if _, err := config.LoadDotEnv(); err != nil {
		failD("cannot read %s: %v", envPath, err)
	} else if _, statErr := os.Stat(envPath); os.IsNotExist(statErr) {
		printMiss("", fmt.Sprintf("%s not found — environment variables only", envPath))
	} else {
		printOK("", fmt.Sprintf("readable: %s", envPath))
	}
	fmt.Println()

	// ── Check 3: tagging model ────────────────────────────────────────────────
	fmt.Println("[ Tagging model ]")
	if fv, err := sharedAnalyzer().Analyze(doctorProbe); err != nil {
		failD("tagger failed: %v", err)
	} else if !fv.Measurable() {
		failD("tagger produced no sentences for a probe sentence")
	} else {
		printOK("", fmt.Sprintf("probe analyzed: %d words, %d sentence(s)", fv.WordCount, fv.SentenceCount))
	}
	fmt.Println()

	// ── Check 4: generation backend ───────────────────────────────────────────
	fmt.Println("[ Generation backend ]")
	gcfg, err := generate.LoadConfig(cfg.Generate)
	if err != nil {
		failD("invalid generation config: %v", err)
	} else if p, err := generate.NewFromConfig(gcfg); err != nil {
		failD("%v", err)
	} else if pinger, ok := p.(generate.Pinger); !ok {
		printSkip(p.ModelID(), "provider does not support reachability checks")
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), doctorPingTimeout)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			failD("[%s] unreachable: %v", p.ModelID(), err)
		} else {
			printOK(p.ModelID(), "reachable")
		}
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. Quill is ready to use.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}
