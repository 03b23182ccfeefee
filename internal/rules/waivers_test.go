package rules

import (
	"testing"

	"github.com/vuetools/v0vet/internal/issue"
	"github.com/vuetools/v0vet/internal/storage"
)

func waiverInput() []issue.Issue {
	return []issue.Issue{
		{File: "src/a.vue", Line: 3, Category: "selection", Severity: issue.SeverityWarning,
			Message: "Manual array selection - consider createSelection()", Code: "const selected = ref<string[]>([])"},
		{File: "src/b.vue", Line: 7, Category: "selection", Severity: issue.SeverityWarning,
			Message: "Manual array manipulation for selection", Code: "items.splice(i, 1)"},
		{File: "src/b.vue", Line: 9, Category: "context", Severity: issue.SeverityError,
			Message: "Unsafe provide/inject - no type safety", Code: "inject('theme')"},
	}
}

func TestApplyWaivers_NoWaivers(t *testing.T) {
	in := waiverInput()
	out, n := ApplyWaivers(in, nil)
	if n != 0 || len(out) != len(in) {
		t.Fatalf("no waivers should be a no-op, got kept=%d waived=%d", len(out), n)
	}
}

func TestApplyWaivers_CategoryWide(t *testing.T) {
	out, n := ApplyWaivers(waiverInput(), []storage.Waiver{{Category: "selection"}})
	if n != 2 {
		t.Fatalf("expected 2 waived, got %d", n)
	}
	if len(out) != 1 || out[0].Category != "context" {
		t.Fatalf("expected only the context issue left, got %+v", out)
	}
}

func TestApplyWaivers_FileScoped(t *testing.T) {
	out, n := ApplyWaivers(waiverInput(), []storage.Waiver{
		{Category: "selection", File: "src/a.vue"},
	})
	if n != 1 {
		t.Fatalf("expected 1 waived, got %d", n)
	}
	for _, is := range out {
		if is.File == "src/a.vue" && is.Category == "selection" {
			t.Fatalf("file-scoped waiver missed %+v", is)
		}
	}
}

func TestApplyWaivers_SubstringScoped(t *testing.T) {
	out, n := ApplyWaivers(waiverInput(), []storage.Waiver{
		{Category: "selection", PatternSub: "SPLICE("}, // case-insensitive, matches code
	})
	if n != 1 {
		t.Fatalf("expected 1 waived, got %d", n)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 kept, got %d", len(out))
	}
	for _, is := range out {
		if is.Line == 7 {
			t.Fatal("splice issue should have been waived")
		}
	}
}

func TestApplyWaivers_CategoryMismatchKeepsIssue(t *testing.T) {
	in := waiverInput()
	out, n := ApplyWaivers(in, []storage.Waiver{{Category: "forms"}})
	if n != 0 || len(out) != len(in) {
		t.Fatalf("forms waiver matched nothing yet waived=%d kept=%d", n, len(out))
	}
}
