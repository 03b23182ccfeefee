package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions the collector accepts. Matching is case-sensitive: a .VUE
// file is not a candidate.
var candidateExts = map[string]bool{
	".vue": true,
	".js":  true,
	".ts":  true,
}

// depDirMarker excludes dependency trees. Containment anywhere in the
// relative path excludes the file, matching the original checker's
// substring test rather than a per-segment comparison.
const depDirMarker = "node_modules"

// Collect enumerates candidate files under root and returns their paths
// relative to root, slash-separated and sorted for reproducible scans.
// Unreadable subtrees are skipped; only a failure to walk root itself is
// an error.
func Collect(root string) ([]string, error) {
	var out []string
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == depDirMarker {
				return filepath.SkipDir
			}
			return nil
		}
		if !candidateExts[filepath.Ext(p)] {
			return nil
		}
		rel, rerr := filepath.Rel(root, p)
		if rerr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if strings.Contains(rel, depDirMarker) {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	sort.Strings(out)
	return out, nil
}
