package scan

import (
	"strings"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/rules"
)

// MatchCategory applies every rule in cat to content, line by line. Each
// (rule, line) match yields one Issue with a 1-based line number and the
// trimmed line text as code. Patterns never match across line boundaries,
// and nothing here skips string literals or comments: the matcher is
// deliberately content-unaware.
func MatchCategory(file, content string, cat rules.Category) []issue.Issue {
	lines := strings.Split(content, "\n")
	var out []issue.Issue
	for _, r := range cat.Rules {
		for i, line := range lines {
			if !r.MatchLine(line) {
				continue
			}
			out = append(out, issue.Issue{
				File:       file,
				Line:       i + 1,
				Category:   cat.Name,
				Severity:   r.Severity,
				Message:    r.Message,
				Suggestion: r.Suggestion,
				Code:       strings.TrimSpace(line),
			})
		}
	}
	return out
}

// MatchFile runs every category against one file's content, concatenating
// results in category declaration order.
func MatchFile(file, content string, cats []rules.Category) []issue.Issue {
	var out []issue.Issue
	for _, cat := range cats {
		out = append(out, MatchCategory(file, content, cat)...)
	}
	return out
}
