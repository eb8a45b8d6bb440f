package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GuideConfig controls how much detail the style guide lists.
type GuideConfig struct {
	TopPOS         int `yaml:"top_pos,omitempty"`
	TopPunctuation int `yaml:"top_punctuation,omitempty"`
}

// GenerateConfig selects the generation backend used by `quill rewrite`.
type GenerateConfig struct {
	Provider    string `yaml:"provider,omitempty"`
	Model       string `yaml:"model,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
	Timeout     string `yaml:"timeout,omitempty"`
	MaxAttempts int    `yaml:"max_attempts,omitempty"`
}

// Config is the in-memory representation of ~/.quill/quill.yaml.
type Config struct {
	Author   string         `yaml:"author,omitempty"`
	Output   string         `yaml:"output,omitempty"`
	Guide    GuideConfig    `yaml:"guide,omitempty"`
	Generate GenerateConfig `yaml:"generate,omitempty"`
}

// QuillDir returns the absolute path to ~/.quill/.
func QuillDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".quill"), nil
}

// ConfigPath returns the absolute path to ~/.quill/quill.yaml.
func ConfigPath() (string, error) {
	dir, err := QuillDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quill.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first quill init.
func DefaultConfig() *Config {
	return &Config{
		Output: "output.txt",
		Guide: GuideConfig{
			TopPOS:         3,
			TopPunctuation: 3,
		},
		Generate: GenerateConfig{
			Provider:    "ollama",
			Model:       "llama3",
			BaseURL:     "http://localhost:11434",
			Timeout:     "5m",
			MaxAttempts: 2,
		},
	}
}

// Load reads and parses ~/.quill/quill.yaml.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	// Expand ~ in Output at load time.
	cfg.Output, err = ExpandPath(cfg.Output)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing config file yields DefaultConfig.
// quill works without `quill init`; the file only overrides defaults.
func LoadOrDefault() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load()
}

// Save marshals cfg and writes it to ~/.quill/quill.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
