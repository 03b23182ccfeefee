package summary

import "github.com/vuetools/v0vet/internal/issue"

// Compute tallies a run's issues by severity and category. Attached to the
// Run after matching; the HTML report and run listings read from it.
func Compute(issues []issue.Issue) issue.Summary {
	s := issue.Summary{
		Total:      len(issues),
		BySeverity: map[string]int{},
		ByCategory: map[string]int{},
	}
	files := map[string]struct{}{}
	for _, is := range issues {
		s.BySeverity[is.Severity]++
		s.ByCategory[is.Category]++
		files[is.File] = struct{}{}
	}
	s.Files = len(files)
	if s.Total == 0 {
		s.BySeverity = nil
		s.ByCategory = nil
	}
	return s
}
