package cmd

import (
	"fmt"
	"sync"

	"github.com/kamusis/quill-cli/internal/config"
	"github.com/kamusis/quill-cli/internal/style"
	"github.com/kamusis/quill-cli/internal/style/segment"
)

var (
	analyzerOnce sync.Once
	analyzer     *style.Analyzer
)

// sharedAnalyzer loads the tagging model on first use.
func sharedAnalyzer() *style.Analyzer {
	analyzerOnce.Do(func() {
		analyzer = style.NewAnalyzer(segment.NewProse())
	})
	return analyzer
}

// loadConfig returns ~/.quill/quill.yaml, or the defaults when it is absent.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

func guideBuilder(cfg *config.Config) *style.GuideBuilder {
	return style.NewGuideBuilder(
		style.WithTopPOS(cfg.Guide.TopPOS),
		style.WithTopPunctuation(cfg.Guide.TopPunctuation),
	)
}

// analyzeFile reads path and returns its feature vector.
func analyzeFile(path string) (style.FeatureVector, error) {
	text, err := readTextFile(path)
	if err != nil {
		return style.FeatureVector{}, err
	}
	logger.Debug("analyzing reference text", "path", path, "bytes", len(text))
	fv, err := sharedAnalyzer().Analyze(text)
	if err != nil {
		return style.FeatureVector{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("analysis complete", "path", path, "features", fv)
	if !fv.Measurable() {
		logger.Warn("reference text yielded no measurable features", "path", path)
	}
	return fv, nil
}

// resolveAuthor prefers the flag, then the configured default author.
func resolveAuthor(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Author
}
