package rulepack

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/rules"
)

// A rule pack is a YAML file of extra detection rules registered alongside
// the builtins. Rules land in whatever category they name, so a pack can
// extend a builtin category or introduce its own.
type packFile struct {
	Rules []packRule `yaml:"rules"`
}

type packRule struct {
	ID         string `yaml:"id"`
	Category   string `yaml:"category"`
	Pattern    string `yaml:"pattern"`
	Message    string `yaml:"message"`
	Suggestion string `yaml:"suggestion"`
	Severity   string `yaml:"severity"` // info|warning|error
}

// LoadAndRegister reads a pack and registers its rules. Returns how many
// rules were registered. A bad rule stops the load: packs are operator
// input, not scan targets, so errors here are not best-effort skipped.
func LoadAndRegister(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read rule pack: %w", err)
	}
	var pack packFile
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return 0, fmt.Errorf("parse yaml: %w", err)
	}
	var n int
	for _, pr := range pack.Rules {
		r, err := compile(pr)
		if err != nil {
			return n, fmt.Errorf("compile rule %q: %w", pr.ID, err)
		}
		rules.Register(pr.Category, r)
		n++
	}
	return n, nil
}

func compile(pr packRule) (rules.Rule, error) {
	if pr.ID == "" || pr.Category == "" || pr.Pattern == "" || pr.Message == "" {
		return rules.Rule{}, fmt.Errorf("missing required fields (id/category/pattern/message)")
	}
	sev := strings.ToLower(strings.TrimSpace(pr.Severity))
	if !issue.KnownSeverity(sev) {
		return rules.Rule{}, fmt.Errorf("unknown severity %q (use info|warning|error)", pr.Severity)
	}
	r, err := rules.New(pr.ID, pr.Pattern, pr.Message, pr.Suggestion, sev)
	if err != nil {
		return rules.Rule{}, fmt.Errorf("pattern: %w", err)
	}
	return r, nil
}
