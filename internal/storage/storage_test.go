package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vuetools/v0vet/internal/issue"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "v0vet.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.CreateSchema(); err != nil {
		t.Fatal(err)
	}
	return db
}

func testRun(id string, started time.Time) *issue.Run {
	return &issue.Run{
		ID:        id,
		StartedAt: started,
		Root:      "/proj",
		Version:   issue.Version,
		Context:   issue.Context{SeverityThreshold: "warning"},
		Issues: []issue.Issue{
			{File: "src/a.vue", Line: 3, Category: "selection", Severity: issue.SeverityWarning,
				Message: "Manual array selection - consider createSelection()",
				Suggestion: "Replace with createSelection({ multiple: true })",
				Code:       "const selected = ref<string[]>([])"},
			{File: "src/a.vue", Line: 9, Category: "context", Severity: issue.SeverityError,
				Message: "Unsafe provide/inject - no type safety",
				Suggestion: "Use createContext() for type-safe DI",
				Code:       "const theme = inject('theme')"},
			{File: "src/b.ts", Line: 1, Category: "browser", Severity: issue.SeverityInfo,
				Message: "Manual SSR check - not tree-shakeable",
				Suggestion: "Use IN_BROWSER constant from @vuetify/v0/constants",
				Code:       "if (typeof window !== 'undefined') {"},
		},
		Summary: issue.Summary{Total: 3, Files: 2},
	}
}

func TestSaveLoadRunRoundTrip(t *testing.T) {
	db := openTestDB(t)
	want := testRun("run-1", time.Now().UTC().Truncate(time.Second))
	if err := db.SaveRun(want); err != nil {
		t.Fatal(err)
	}

	got, err := db.LoadRun("run-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != want.ID || got.Root != want.Root || got.Version != want.Version {
		t.Fatalf("run header changed: %+v", got)
	}
	if got.Context.SeverityThreshold != "warning" {
		t.Errorf("context lost: %+v", got.Context)
	}
	if len(got.Issues) != len(want.Issues) {
		t.Fatalf("got %d issues, want %d", len(got.Issues), len(want.Issues))
	}
	for i := range want.Issues {
		if got.Issues[i] != want.Issues[i] {
			t.Errorf("issue %d: got %+v, want %+v", i, got.Issues[i], want.Issues[i])
		}
	}
}

func TestSaveRun_UpsertReplacesIssues(t *testing.T) {
	db := openTestDB(t)
	run := testRun("run-1", time.Now().UTC())
	if err := db.SaveRun(run); err != nil {
		t.Fatal(err)
	}
	run.Issues = run.Issues[:1]
	if err := db.SaveRun(run); err != nil {
		t.Fatal(err)
	}

	rows, err := db.ListRuns(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("upsert created a second run: %+v", rows)
	}
	if rows[0].Issues != 1 {
		t.Fatalf("stale issue rows survived the upsert: %d", rows[0].Issues)
	}
}

func TestListRuns_Order(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if err := db.SaveRun(testRun(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatal(err)
		}
	}
	rows, err := db.ListRuns(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("limit ignored: %d rows", len(rows))
	}
	if rows[0].ID != "run-c" || rows[1].ID != "run-b" {
		t.Fatalf("not newest-first: %+v", rows)
	}

	latest, err := db.LoadLatestRun()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != "run-c" {
		t.Fatalf("latest = %q", latest.ID)
	}
}

func TestListIssues_SeverityFilterAndOrder(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveRun(testRun("run-1", time.Now().UTC())); err != nil {
		t.Fatal(err)
	}

	all, err := db.ListIssues("run-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d issues, want 3", len(all))
	}
	// Discovery order, not severity order.
	if all[0].Category != "selection" || all[1].Category != "context" || all[2].Category != "browser" {
		t.Fatalf("order changed: %+v", all)
	}

	warn, err := db.ListIssues("run-1", issue.SeverityWarning)
	if err != nil {
		t.Fatal(err)
	}
	if len(warn) != 2 {
		t.Fatalf("warning filter: got %d, want 2", len(warn))
	}
	for _, is := range warn {
		if is.Severity == issue.SeverityInfo {
			t.Fatalf("info issue passed the warning filter: %+v", is)
		}
	}
}

func TestHasRun(t *testing.T) {
	db := openTestDB(t)
	ok, err := db.HasRun("run-x")
	if err != nil || ok {
		t.Fatalf("HasRun on empty db = %v, %v", ok, err)
	}
	if err := db.SaveRun(testRun("run-x", time.Now().UTC())); err != nil {
		t.Fatal(err)
	}
	ok, err = db.HasRun("run-x")
	if err != nil || !ok {
		t.Fatalf("HasRun after save = %v, %v", ok, err)
	}
}

func TestLoadRun_Missing(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadRun("absent"); err == nil {
		t.Fatal("expected an error for a missing run")
	}
}
