package rules

import (
	"strings"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/storage"
)

// ApplyWaivers filters out issues matched by any active waiver, preserving
// order. Returns (kept, waivedCount). A waiver names a category and may
// narrow further by exact file and by a substring of the message or code.
func ApplyWaivers(in []issue.Issue, waivers []storage.Waiver) ([]issue.Issue, int) {
	if len(waivers) == 0 || len(in) == 0 {
		return in, 0
	}
	var out []issue.Issue
	waived := 0
nextIssue:
	for _, is := range in {
		for _, w := range waivers {
			if !eqCI(is.Category, w.Category) {
				continue
			}
			if w.File != "" && !eqCI(is.File, w.File) {
				continue
			}
			if w.PatternSub != "" {
				ps := strings.ToLower(w.PatternSub)
				if !strings.Contains(strings.ToLower(is.Message), ps) &&
					!strings.Contains(strings.ToLower(is.Code), ps) {
					continue
				}
			}
			waived++
			continue nextIssue
		}
		out = append(out, is)
	}
	return out, waived
}

func eqCI(a, b string) bool { return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) }
