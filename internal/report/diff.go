package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vuetools/v0vet/internal/issue"
)

type diffPayload struct {
	BaseID  string      `json:"base_id"`
	HeadID  string      `json:"head_id"`
	Summary diffSummary `json:"summary"`
	New     []diffIssue `json:"new"`
	Removed []diffIssue `json:"removed"`
	Moved   []diffMoved `json:"moved"`
}

type diffSummary struct {
	NewCount     int `json:"new"`
	RemovedCount int `json:"removed"`
	MovedCount   int `json:"moved"`
}

type diffIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Code     string `json:"code"`
}

type diffMoved struct {
	Key      string `json:"key"`
	BaseLine int    `json:"base_line"`
	HeadLine int    `json:"head_line"`
}

// WriteDiffJSON compares two runs and writes the delta under outDir.
// Identity is (file, category, message, code) — deliberately excluding the
// line number, which shifts on every unrelated edit. An issue present in
// both runs on different lines reports as moved, not new+removed.
func WriteDiffJSON(baseID, headID, outDir string, base, head *issue.Run) (string, error) {
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	// The same key can legitimately occur on several lines (identical code
	// repeated in one file), so each key maps to its occurrence list and
	// occurrences pair up positionally in discovery order.
	bm := map[string][]issue.Issue{}
	hm := map[string][]issue.Issue{}
	for _, is := range base.Issues {
		k := keyOf(is)
		bm[k] = append(bm[k], is)
	}
	for _, is := range head.Issues {
		k := keyOf(is)
		hm[k] = append(hm[k], is)
	}

	var added, removed []diffIssue
	var moved []diffMoved
	for k, his := range hm {
		bis := bm[k]
		n := len(bis)
		if len(his) < n {
			n = len(his)
		}
		for i := 0; i < n; i++ {
			if bis[i].Line != his[i].Line {
				moved = append(moved, diffMoved{Key: occKey(k, i), BaseLine: bis[i].Line, HeadLine: his[i].Line})
			}
		}
		for _, hi := range his[n:] {
			added = append(added, asDiff(hi))
		}
	}
	for k, bis := range bm {
		n := len(hm[k])
		if n > len(bis) {
			n = len(bis)
		}
		for _, bi := range bis[n:] {
			removed = append(removed, asDiff(bi))
		}
	}

	sort.Slice(added, func(i, j int) bool { return lessDiff(added[i], added[j]) })
	sort.Slice(removed, func(i, j int) bool { return lessDiff(removed[i], removed[j]) })
	sort.Slice(moved, func(i, j int) bool { return moved[i].Key < moved[j].Key })

	payload := diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:     len(added),
			RemovedCount: len(removed),
			MovedCount:   len(moved),
		},
		New:     added,
		Removed: removed,
		Moved:   moved,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

// occKey disambiguates repeated occurrences of one key in the moved list.
func occKey(k string, i int) string {
	if i == 0 {
		return k
	}
	return k + "#" + strconv.Itoa(i+1)
}

func keyOf(is issue.Issue) string {
	var sb strings.Builder
	sb.WriteString(is.File)
	sb.WriteByte('|')
	sb.WriteString(is.Category)
	sb.WriteByte('|')
	sb.WriteString(is.Message)
	sb.WriteByte('|')
	sb.WriteString(is.Code)
	return sb.String()
}

func asDiff(is issue.Issue) diffIssue {
	return diffIssue{
		File:     is.File,
		Line:     is.Line,
		Category: is.Category,
		Severity: is.Severity,
		Message:  is.Message,
		Code:     is.Code,
	}
}

func lessDiff(a, b diffIssue) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Message < b.Message
}
