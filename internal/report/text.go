package report

import (
	"fmt"
	"io"

	"github.com/vuetools/v0vet/internal/issue"
)

var severityIcon = map[string]string{
	issue.SeverityError:   "❌",
	issue.SeverityWarning: "⚠️",
	issue.SeverityInfo:    "ℹ️",
}

// RenderText writes the human-readable report. Issues are grouped by file
// in first-seen order and kept in their original relative order within a
// file; grouping is a stable partition, never a sort. An empty sequence
// emits only the confirmation line.
func RenderText(w io.Writer, issues []issue.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "✅ No anti-patterns found!")
		return
	}

	fmt.Fprintf(w, "🔍 Found %d potential improvements:\n\n", len(issues))

	var order []string
	byFile := map[string][]issue.Issue{}
	for _, is := range issues {
		if _, seen := byFile[is.File]; !seen {
			order = append(order, is.File)
		}
		byFile[is.File] = append(byFile[is.File], is)
	}

	for _, file := range order {
		fmt.Fprintf(w, "📄 %s\n", file)
		for _, is := range byFile[file] {
			fmt.Fprintf(w, "  %s Line %d: %s\n", severityIcon[is.Severity], is.Line, is.Message)
			fmt.Fprintf(w, "     Code: %s\n", is.Code)
			fmt.Fprintf(w, "     💡 %s\n", is.Suggestion)
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}
