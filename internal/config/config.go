// Package config provides defaults and optional file-based overrides for nbsync.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the optional per-repository configuration file, read from the
// repository root.
const File = ".nbsync.yml"

// Config holds everything the pipeline treats as configurable. The zero
// value is not usable; start from Default and overlay Load on top.
type Config struct {
	// Readme is the target file whose marker region is rewritten.
	Readme string `yaml:"readme"`

	// BeginMarker and EndMarker delimit the region nbsync may modify.
	BeginMarker string `yaml:"begin_marker"`
	EndMarker   string `yaml:"end_marker"`

	// Extension selects notebook files (direct children only).
	Extension string `yaml:"notebook_ext"`

	// Branch is used in generated Colab links (blob/<branch>/...).
	Branch string `yaml:"branch"`

	// GitHubRepo is an OWNER/REPO identifier. When set it takes the place
	// of remote-URL detection (the ZIKUU_GITHUB_REPO env var still wins).
	GitHubRepo string `yaml:"github_repo"`

	// Exclude lists top-level directory names skipped by enumeration.
	// Setting it in the file replaces the default list entirely.
	Exclude []string `yaml:"exclude"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Readme:      "README.md",
		BeginMarker: "<!-- ZIKUU_NOTEBOOKS_LIST:BEGIN -->",
		EndMarker:   "<!-- ZIKUU_NOTEBOOKS_LIST:END -->",
		Extension:   ".ipynb",
		Branch:      "main",
		Exclude: []string{
			".git",
			".github",
			"__pycache__",
			".venv",
			"venv",
			"node_modules",
			"scripts",
			".idea",
			".vscode",
		},
	}
}

// Load returns the effective configuration for the repository at root:
// the defaults with any values from .nbsync.yml layered on top. A missing
// file is not an error; a malformed one is.
func Load(root string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(root, File))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", File, err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", File, err)
	}

	if override.Readme != "" {
		cfg.Readme = override.Readme
	}
	if override.BeginMarker != "" {
		cfg.BeginMarker = override.BeginMarker
	}
	if override.EndMarker != "" {
		cfg.EndMarker = override.EndMarker
	}
	if override.Extension != "" {
		cfg.Extension = override.Extension
	}
	if override.Branch != "" {
		cfg.Branch = override.Branch
	}
	if override.GitHubRepo != "" {
		cfg.GitHubRepo = override.GitHubRepo
	}
	if override.Exclude != nil {
		cfg.Exclude = override.Exclude
	}

	return cfg, nil
}

// Excluded reports whether a top-level directory name is skipped by
// enumeration: hidden names (leading dot) and names on the exclude list.
func (c Config) Excluded(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, e := range c.Exclude {
		if name == e {
			return true
		}
	}
	return false
}
