package scan

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/rules"
)

type Options struct {
	// Jobs bounds how many files are matched concurrently. Zero or one
	// keeps the reference sequential behavior; higher values fan out but
	// aggregation stays keyed by file index, so output is identical.
	Jobs int
}

// Project scans root with the registered catalog, sequentially.
func Project(root string) (issue.Run, error) {
	return ProjectWith(root, Options{})
}

// ProjectWith scans root and returns the unfiltered run. Issues are
// ordered by (file, category declaration, rule declaration, line).
// Files that cannot be read or are not valid UTF-8 are skipped without
// producing output or errors.
func ProjectWith(root string, opts Options) (issue.Run, error) {
	run := issue.Run{
		Root:    filepath.Clean(root),
		Version: issue.Version,
	}

	files, err := Collect(root)
	if err != nil {
		return run, err
	}
	cats := rules.Categories()

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	results := make([][]issue.Issue, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, rel := range files {
		g.Go(func() error {
			data, rerr := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if rerr != nil || !utf8.Valid(data) {
				return nil // best-effort: skip unreadable or binary files
			}
			results[i] = MatchFile(rel, string(data), cats)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	for _, rs := range results {
		run.Issues = append(run.Issues, rs...)
	}
	return run, nil
}
