package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jabberwocky238/jwddns/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const tomlConfig = `
timeout = "10s"

[[domains]]
domain = "example.ydns.eu"
update_url = "https://ydns.io/hosts/update/Wh4tAL0velYDayforS0meDNS"
update_url_v6 = "https://ydns.io/hosts/update/Wh4tAL0velYDayforIPv6ing"

[[domains]]
domain = "example2.ydns.eu"
update_url = "https://ydns.io/hosts/update/AL0ngRand0mString1sHeree"
`

const yamlConfig = `
timeout: 10s
domains:
  - domain: example.ydns.eu
    update_url: https://ydns.io/hosts/update/Wh4tAL0velYDayforS0meDNS
    update_url_v6: https://ydns.io/hosts/update/Wh4tAL0velYDayforIPv6ing
  - domain: example2.ydns.eu
    update_url: https://ydns.io/hosts/update/AL0ngRand0mString1sHeree
`

func checkParsed(t *testing.T, cfg *Config) {
	t.Helper()
	if len(cfg.Domains) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(cfg.Domains))
	}
	first := cfg.Domains[0]
	if first.Domain != "example.ydns.eu" {
		t.Errorf("Domain = %q, want example.ydns.eu", first.Domain)
	}
	if first.UpdateURL != "https://ydns.io/hosts/update/Wh4tAL0velYDayforS0meDNS" {
		t.Errorf("unexpected UpdateURL %q", first.UpdateURL)
	}
	if first.UpdateURLV6 != "https://ydns.io/hosts/update/Wh4tAL0velYDayforIPv6ing" {
		t.Errorf("unexpected UpdateURLV6 %q", first.UpdateURLV6)
	}
	second := cfg.Domains[1]
	if second.UpdateURLV6 != "" {
		t.Errorf("expected empty UpdateURLV6, got %q", second.UpdateURLV6)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", tomlConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	checkParsed(t, cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", yamlConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	checkParsed(t, cfg)
}

func TestLoad_FormatsAgree(t *testing.T) {
	tomlCfg, err := Load(writeFile(t, "config.toml", tomlConfig))
	if err != nil {
		t.Fatalf("Load(toml) error: %v", err)
	}
	yamlCfg, err := Load(writeFile(t, "config.yml", yamlConfig))
	if err != nil {
		t.Fatalf("Load(yaml) error: %v", err)
	}
	if len(tomlCfg.Domains) != len(yamlCfg.Domains) {
		t.Fatalf("entry count differs: toml %d, yaml %d", len(tomlCfg.Domains), len(yamlCfg.Domains))
	}
	for i := range tomlCfg.Domains {
		if tomlCfg.Domains[i] != yamlCfg.Domains[i] {
			t.Errorf("entry %d differs: toml %+v, yaml %+v", i, tomlCfg.Domains[i], yamlCfg.Domains[i])
		}
	}
}

func TestLoad_DefaultTimeout(t *testing.T) {
	path := writeFile(t, "config.toml", `
[[domains]]
domain = "example.ydns.eu"
update_url = "https://ydns.io/hosts/update/AL0ngRand0mString1sHeree"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := writeFile(t, "config.toml", `
timeout = "not-a-duration"

[[domains]]
domain = "example.ydns.eu"
update_url = "https://ydns.io/hosts/update/AL0ngRand0mString1sHeree"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}

func TestLoad_NoDomains(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "empty toml", file: "config.toml", content: ""},
		{name: "empty yaml", file: "config.yaml", content: ""},
		{name: "toml without domains", file: "config.toml", content: `timeout = "5s"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			if !errors.Is(err, types.ErrNoDomains) {
				t.Errorf("Load() error = %v, want ErrNoDomains", err)
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken toml", file: "config.toml", content: "[[domains]\ndomain = "},
		{name: "broken yaml", file: "config.yaml", content: "domains:\n  - domain: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	path := writeFile(t, "config.toml", tomlConfig)

	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != path {
		t.Errorf("Resolve() = %q, want %q", got, path)
	}
}

func TestResolve_ExplicitPathMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, types.ErrConfigNotFound) {
		t.Errorf("Resolve() error = %v, want ErrConfigNotFound", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	if len(paths) == 0 {
		t.Fatal("expected at least one default path")
	}
	if paths[len(paths)-1] != "/etc/jwddns.toml" {
		t.Errorf("last default path = %q, want /etc/jwddns.toml", paths[len(paths)-1])
	}
}
