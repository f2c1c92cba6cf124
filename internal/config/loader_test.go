package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	p := writeConfig(t, `
tools:
  pacman: "pamac"
fzf:
  enabled: false
`)
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Tools.Pacman != "pamac" {
		t.Fatalf("override lost: %q", cfg.Tools.Pacman)
	}
	if cfg.Tools.Git != "git" || cfg.AUR.RPCURL == "" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Fzf.Enabled {
		t.Fatalf("fzf should be disabled")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	p := writeConfig(t, "tools: [broken")
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadFileSchemaViolation(t *testing.T) {
	p := writeConfig(t, `
aur:
  rpc_url: ""
`)
	_, err := LoadFile(p)
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestLoadFileCloneURLNeedsPlaceholder(t *testing.T) {
	p := writeConfig(t, `
aur:
  clone_url: "https://example.org/pkg.git"
`)
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected schema error for clone_url without %%s")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := ValidateAgainstSchema(Default()); err != nil {
		t.Fatalf("defaults must satisfy the schema: %v", err)
	}
}
