package scan

import (
	"testing"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/rules"
)

func TestMatchCategory_LineNumbersAndCode(t *testing.T) {
	content := "import { ref } from 'vue'\n\n  const selected = ref<string[]>([])\n"
	cats := rules.Categories()
	var selection rules.Category
	for _, c := range cats {
		if c.Name == "selection" {
			selection = c
		}
	}

	got := MatchCategory("src/use.ts", content, selection)
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(got), got)
	}
	is := got[0]
	if is.Line != 3 {
		t.Errorf("line = %d, want 3", is.Line)
	}
	if is.Code != "const selected = ref<string[]>([])" {
		t.Errorf("code not trimmed: %q", is.Code)
	}
	if is.Severity != issue.SeverityWarning || is.Category != "selection" {
		t.Errorf("wrong classification: %+v", is)
	}
}

func TestMatchCategory_RepeatedMatches(t *testing.T) {
	content := "items.splice(i, 1)\nother.splice(j, 1)\n"
	var selection rules.Category
	for _, c := range rules.Categories() {
		if c.Name == "selection" {
			selection = c
		}
	}
	got := MatchCategory("a.ts", content, selection)
	if len(got) != 2 {
		t.Fatalf("expected one issue per matching line, got %d", len(got))
	}
	if got[0].Line != 1 || got[1].Line != 2 {
		t.Fatalf("lines out of order: %d, %d", got[0].Line, got[1].Line)
	}
}

func TestMatchFile_CategoryOrder(t *testing.T) {
	// inject() appears before the selection pattern in the file, but
	// selection is declared first, so its issue comes first.
	content := "const theme = inject('theme')\nconst selected = ref<string[]>([])\n"
	got := MatchFile("a.vue", content, rules.Categories())
	if len(got) != 2 {
		t.Fatalf("expected 2 issues, got %d: %+v", len(got), got)
	}
	if got[0].Category != "selection" || got[1].Category != "context" {
		t.Fatalf("aggregation did not follow declaration order: %+v", got)
	}
}

func TestMatchFile_CleanContent(t *testing.T) {
	content := "import { createSelection } from '@vuetify/v0'\nconst selection = createSelection({ multiple: true })\n"
	if got := MatchFile("a.ts", content, rules.Categories()); len(got) != 0 {
		t.Fatalf("clean content produced issues: %+v", got)
	}
}

func TestMatchFile_EmptyContent(t *testing.T) {
	if got := MatchFile("a.ts", "", rules.Categories()); len(got) != 0 {
		t.Fatalf("empty content produced issues: %+v", got)
	}
}
