package rules

import "regexp"

// Rule detects one textual anti-pattern. Pattern is a regular expression
// searched per line (unanchored, like the matcher that consumes it).
type Rule struct {
	ID         string
	Pattern    string
	Message    string
	Suggestion string
	Severity   string

	re *regexp.Regexp
}

// Category is an ordered group of related rules. Order within a category
// only affects report ordering, never correctness.
type Category struct {
	Name  string
	Rules []Rule
}

// New compiles pattern and returns the rule. Used by rule packs where the
// pattern comes from user-supplied YAML.
func New(id, pattern, message, suggestion, severity string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, err
	}
	return Rule{
		ID:         id,
		Pattern:    pattern,
		Message:    message,
		Suggestion: suggestion,
		Severity:   severity,
		re:         re,
	}, nil
}

// MustNew is New for the builtin tables, where a bad pattern is a bug.
func MustNew(id, pattern, message, suggestion, severity string) Rule {
	r, err := New(id, pattern, message, suggestion, severity)
	if err != nil {
		panic("rules: bad builtin pattern " + id + ": " + err.Error())
	}
	return r
}

// MatchLine reports whether the rule's pattern occurs anywhere in line.
func (r Rule) MatchLine(line string) bool {
	return r.re.MatchString(line)
}
