package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect_ExtensionsAndSort(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/useSelection.ts", "")
	writeFile(t, root, "src/App.vue", "")
	writeFile(t, root, "scripts/build.js", "")
	writeFile(t, root, "README.md", "")
	writeFile(t, root, "styles/main.css", "")

	got, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"scripts/build.js", "src/App.vue", "src/useSelection.ts"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollect_SkipsNodeModules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.vue", "")
	writeFile(t, root, "node_modules/vue/dist/vue.js", "")
	writeFile(t, root, "packages/core/node_modules/lib/index.ts", "")

	got, err := Collect(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "src/App.vue" {
		t.Fatalf("dependency trees leaked into the candidate set: %v", got)
	}
}

func TestCollect_MissingRoot(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing root")
	}
}

func TestCollect_EmptyProject(t *testing.T) {
	got, err := Collect(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}
