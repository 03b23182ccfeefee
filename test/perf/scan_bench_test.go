package perf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vuetools/v0vet/internal/scan"
)

func seedProject(b *testing.B, files, linesPer int) string {
	b.Helper()
	root := b.TempDir()
	var sb strings.Builder
	for i := 0; i < linesPer; i++ {
		switch i % 5 {
		case 0:
			sb.WriteString("const selected = ref<string[]>([])\n")
		case 1:
			sb.WriteString("const theme = inject('theme')\n")
		default:
			sb.WriteString("const ok = computed(() => items.value.length)\n")
		}
	}
	content := sb.String()
	for i := 0; i < files; i++ {
		p := filepath.Join(root, fmt.Sprintf("src/mod%02d", i%8), fmt.Sprintf("file%04d.ts", i))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			b.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			b.Fatal(err)
		}
	}
	return root
}

func BenchmarkScanProject(b *testing.B) {
	root := seedProject(b, 100, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run, err := scan.Project(root)
		if err != nil {
			b.Fatal(err)
		}
		if len(run.Issues) == 0 {
			b.Fatal("benchmark corpus produced no issues")
		}
	}
}

func BenchmarkScanProjectParallel(b *testing.B) {
	root := seedProject(b, 100, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scan.ProjectWith(root, scan.Options{Jobs: 8}); err != nil {
			b.Fatal(err)
		}
	}
}
