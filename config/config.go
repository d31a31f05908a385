// Package config locates, loads and validates the jwddns configuration
// file. Both TOML (the native format) and YAML are supported, selected
// by file extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jabberwocky238/jwddns/types"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the per-request timeout applied when the config
// file does not set one.
const DefaultTimeout = 5 * time.Second

// Config is the parsed configuration.
type Config struct {
	// Domains are processed in file order; every present update URL
	// is requested exactly once per run.
	Domains []types.DomainEntry

	// Timeout bounds each individual update request.
	Timeout time.Duration
}

// fileConfig mirrors the on-disk layout for both formats.
type fileConfig struct {
	Domains []types.DomainEntry `toml:"domains" yaml:"domains"`
	Timeout string              `toml:"timeout" yaml:"timeout"`
}

// DefaultPaths returns the config file locations searched when no
// explicit path is given, in descending priority.
func DefaultPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jwddns", "config.toml"))
	}
	paths = append(paths, "/etc/jwddns.toml")
	return paths
}

// Resolve determines which config file to use. An explicit path wins
// and must exist; otherwise the first existing default path is used.
// Returns types.ErrConfigNotFound (wrapped) when nothing is found.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", types.ErrConfigNotFound, explicit)
		}
		return explicit, nil
	}

	paths := DefaultPaths()
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (searched: %s)", types.ErrConfigNotFound, strings.Join(paths, ", "))
}

// Load reads and parses the config file at path. Files ending in
// .yaml or .yml are parsed as YAML, everything else as TOML. A file
// with no domain entries yields types.ErrNoDomains.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	}

	if len(fc.Domains) == 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrNoDomains, path)
	}

	cfg := &Config{
		Domains: fc.Domains,
		Timeout: DefaultTimeout,
	}

	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse timeout %q: %w", fc.Timeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
