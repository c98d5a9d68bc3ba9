// Package config loads pipeline settings from an optional TOML file.
// A missing file yields the defaults; flags override file values in the
// command layer.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file looked up when no -config flag is given.
const DefaultPath = "schedgen.toml"

// BuildConfig holds the toolchain argv for the build and run steps.
type BuildConfig struct {
	Command []string `toml:"command"`
	Run     []string `toml:"run"`
}

// Config holds all file-configurable pipeline settings.
type Config struct {
	Source   string      `toml:"source"`   // canonical source file path
	Language string      `toml:"language"` // fence language tag
	Provider string      `toml:"provider"` // openai or gemini; empty = auto-detect
	Model    string      `toml:"model"`    // empty = provider default
	Build    BuildConfig `toml:"build"`
}

func defaults() Config {
	return Config{
		Source:   "src/main.rs",
		Language: "rust",
		Build: BuildConfig{
			Command: []string{"cargo", "build", "--release"},
			Run:     []string{"sudo", "./target/release/scx_rust_scheduler"},
		},
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned. Explicit paths that fail to parse are.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
