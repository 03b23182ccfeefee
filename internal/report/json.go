package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/vuetools/v0vet/internal/issue"
)

// RenderJSON writes the structured report: an indented JSON array of
// issues, in exactly the order received. An empty sequence renders as [],
// never null, so consumers can always range over the result.
func RenderJSON(w io.Writer, issues []issue.Issue) error {
	if issues == nil {
		issues = []issue.Issue{}
	}
	b, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteJSON persists the full run as a report artifact under outDir.
func WriteJSON(runID, outDir string, run *issue.Run) (string, error) {
	path := filepath.Join(outDir, runID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return "", err
	}
	return path, nil
}
