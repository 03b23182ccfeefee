package issue

import "time"

const Version = "1.0"

// Severity levels, ordered info < warning < error. The order is used for
// threshold filtering only; reports keep issues in discovery order.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is one rule match on one line of one file. File is always relative
// to the scanned project root. The JSON field set is the tool's stable
// machine-readable contract; adding fields here breaks downstream parsers.
type Issue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Code       string `json:"code"`
}

// Run is one complete scan of a project.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Root      string    `json:"root,omitempty"`
	Version   string    `json:"version,omitempty"`

	Context Context `json:"context"`
	Issues  []Issue `json:"issues,omitempty"`
	Summary Summary `json:"summary"`
}

type Context struct {
	SeverityThreshold string   `json:"severity_threshold,omitempty"`
	DisabledRules     []string `json:"disabled_rules,omitempty"`
}

// Summary holds per-run counts computed after matching.
type Summary struct {
	Total      int            `json:"total"`
	Files      int            `json:"files"`
	BySeverity map[string]int `json:"by_severity,omitempty"`
	ByCategory map[string]int `json:"by_category,omitempty"`
}

// Rank maps a severity to its threshold rank. Unknown severities rank as
// info so they are never silently dropped by a filter.
func Rank(severity string) int {
	switch severity {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	default:
		return 1
	}
}

// KnownSeverity reports whether s is one of the three recognized levels.
func KnownSeverity(s string) bool {
	return s == SeverityInfo || s == SeverityWarning || s == SeverityError
}
