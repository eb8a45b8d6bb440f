package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamusis/quill-cli/internal/config"
	"github.com/kamusis/quill-cli/internal/style"
)

func writeFingerprint(t *testing.T, dir string) string {
	t.Helper()
	fv := style.FeatureVector{
		SentenceCount:          3,
		TokenCount:             40,
		WordCount:              34,
		SyllableCount:          45,
		AvgSentenceLength:      11.3,
		SentenceLengthVariance: 4.2,
		TypeTokenRatio:         0.71,
		FleschReadingEase:      84.2,
	}
	fv.POS[style.POSNoun] = 0.3
	fv.POS[style.POSVerb] = 0.2
	fv.POS[style.POSPunct] = 0.15
	fv.POS[style.POSDet] = 0.35
	fv.Punctuation[style.PunctPeriod] = 1
	fv.Punctuation[style.PunctComma] = 0.33

	data, err := style.EncodeFingerprint(fv, style.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, "features.json")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFingerprint(t *testing.T) {
	p := writeFingerprint(t, t.TempDir())
	fv, err := loadFingerprint(p)
	if err != nil {
		t.Fatalf("loadFingerprint: %v", err)
	}
	if fv.SentenceCount != 3 || fv.WordCount != 34 {
		t.Fatalf("unexpected vector: %+v", fv)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("sentence_count: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFingerprint(bad); err == nil {
		t.Fatalf("expected error for incomplete fingerprint")
	}
}

func TestGuideCommandFromFeatures(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	p := writeFingerprint(t, home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"guide", "--author", "Ernest Hemingway", "--features", p})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("guide: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"## Style Guide: Ernest Hemingway",
		"approximately 11.3 words (target variance 4.2)",
		"short and direct",
		"Flesch Reading Ease score of about 84.2",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("guide output missing %q:\n%s", want, got)
		}
	}
}

func TestResolveAuthor(t *testing.T) {
	cfg := configWithAuthor("Jane Austen")
	if got := resolveAuthor("", cfg); got != "Jane Austen" {
		t.Fatalf("want config author, got %q", got)
	}
	if got := resolveAuthor("Virginia Woolf", cfg); got != "Virginia Woolf" {
		t.Fatalf("flag should win, got %q", got)
	}
}

func configWithAuthor(name string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Author = name
	return cfg
}
