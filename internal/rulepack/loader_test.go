package rulepack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vuetools/v0vet/internal/rules"
)

func writePack(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadAndRegister(t *testing.T) {
	path := writePack(t, `
rules:
  - id: TEAM-NO-ALERT
    category: team
    pattern: 'alert\('
    message: Do not ship alert() calls
    suggestion: Use the notification composable
    severity: error
  - id: TEAM-NO-VAR
    category: team
    pattern: '^\s*var\s'
    message: var declaration
    suggestion: Use const or let
    severity: info
`)
	n, err := LoadAndRegister(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("registered %d rules, want 2", n)
	}
	r, ok := rules.Get("TEAM-NO-ALERT")
	if !ok {
		t.Fatal("pack rule not in registry")
	}
	if !r.MatchLine("alert('hi')") {
		t.Fatal("pack rule pattern not compiled")
	}
	for _, cat := range rules.Categories() {
		if cat.Name == "team" {
			return
		}
	}
	t.Fatal("pack category missing from catalog")
}

func TestLoadAndRegister_MissingFile(t *testing.T) {
	if _, err := LoadAndRegister(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadAndRegister_BadYAML(t *testing.T) {
	path := writePack(t, "rules: [whoops")
	if _, err := LoadAndRegister(path); err == nil || !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("got %v, want a parse error", err)
	}
}

func TestLoadAndRegister_BadSeverity(t *testing.T) {
	path := writePack(t, `
rules:
  - id: X-1
    category: x
    pattern: 'x'
    message: m
    severity: fatal
`)
	if _, err := LoadAndRegister(path); err == nil || !strings.Contains(err.Error(), "severity") {
		t.Fatalf("got %v, want a severity error", err)
	}
}

func TestLoadAndRegister_BadPattern(t *testing.T) {
	path := writePack(t, `
rules:
  - id: X-2
    category: x
    pattern: '(['
    message: m
    severity: info
`)
	if _, err := LoadAndRegister(path); err == nil || !strings.Contains(err.Error(), `compile rule "X-2"`) {
		t.Fatalf("got %v, want a compile error naming the rule", err)
	}
}

func TestLoadAndRegister_MissingFields(t *testing.T) {
	path := writePack(t, `
rules:
  - id: X-3
    pattern: 'x'
    severity: info
`)
	if _, err := LoadAndRegister(path); err == nil {
		t.Fatal("expected an error for missing category/message")
	}
}
