package report

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/vuetools/v0vet/internal/issue"
)

// WriteHTML renders the run as a standalone HTML artifact under outDir.
func WriteHTML(runID, outDir string, run *issue.Run) (string, error) {
	path := filepath.Join(outDir, runID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(runID))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace} .sev-error{color:#b00020} .sev-warning{color:#a66b00} .sev-info{color:#22577a}</style>")
	fmt.Fprint(f, "</head><body>")

	fmt.Fprintf(f, "<h1>v0vet report – <span class='mono'>%s</span></h1>", html.EscapeString(runID))
	fmt.Fprintf(f, "<p>Root: <span class='mono'>%s</span></p>", html.EscapeString(run.Root))
	fmt.Fprintf(f, "<p>Files with issues: %d &nbsp; Issues: %d</p>", run.Summary.Files, run.Summary.Total)

	if run.Context.SeverityThreshold != "" {
		fmt.Fprintf(f, "<p class='dim'>Severity threshold: %s", html.EscapeString(run.Context.SeverityThreshold))
		if n := len(run.Context.DisabledRules); n > 0 {
			fmt.Fprintf(f, " &nbsp; Disabled rules: %d", n)
		}
		fmt.Fprint(f, "</p>")
	}

	// Counts by severity (fixed level order) and by category.
	if run.Summary.Total > 0 {
		fmt.Fprint(f, "<h2>Summary</h2><table><tr><th>Severity</th><th>Count</th></tr>")
		for _, sev := range []string{issue.SeverityError, issue.SeverityWarning, issue.SeverityInfo} {
			if n := run.Summary.BySeverity[sev]; n > 0 {
				fmt.Fprintf(f, "<tr><td class='sev-%s'>%s</td><td>%d</td></tr>", sev, sev, n)
			}
		}
		fmt.Fprint(f, "</table>")
	}

	if len(run.Issues) > 0 {
		fmt.Fprint(f, "<h2>All Issues</h2><table><tr><th>Severity</th><th>Category</th><th>File</th><th>Line</th><th>Message</th><th>Suggestion</th><th>Code</th></tr>")
		for _, is := range run.Issues {
			fmt.Fprintf(f, "<tr><td class='sev-%s'>%s</td><td>%s</td><td class='mono'>%s</td><td>%d</td><td>%s</td><td>%s</td><td class='mono'>%s</td></tr>",
				html.EscapeString(is.Severity),
				html.EscapeString(is.Severity),
				html.EscapeString(is.Category),
				html.EscapeString(is.File),
				is.Line,
				html.EscapeString(is.Message),
				html.EscapeString(is.Suggestion),
				html.EscapeString(is.Code),
			)
		}
		fmt.Fprint(f, "</table>")
	} else {
		fmt.Fprint(f, "<h2>All Issues</h2><p class='dim'>No anti-patterns at or above the configured threshold.</p>")
	}

	fmt.Fprint(f, "</body></html>")
	return path, nil
}
