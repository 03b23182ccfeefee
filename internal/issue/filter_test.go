package issue

import "testing"

func sample() []Issue {
	return []Issue{
		{File: "a.vue", Line: 1, Category: "selection", Severity: SeverityWarning},
		{File: "a.vue", Line: 2, Category: "context", Severity: SeverityError},
		{File: "b.ts", Line: 5, Category: "browser", Severity: SeverityInfo},
		{File: "b.ts", Line: 9, Category: "selection", Severity: SeverityWarning},
	}
}

func TestFilterMin_EmptyThresholdIsIdentity(t *testing.T) {
	in := sample()
	out := FilterMin(in, "")
	if len(out) != len(in) {
		t.Fatalf("expected identity, got %d of %d", len(out), len(in))
	}
	// Must be the same slice, not a copy.
	if &out[0] != &in[0] {
		t.Fatalf("expected the input slice back, got a copy")
	}
}

func TestFilterMin_Thresholds(t *testing.T) {
	in := sample()

	warn := FilterMin(in, SeverityWarning)
	if len(warn) != 3 {
		t.Fatalf("warning threshold: expected 3, got %d", len(warn))
	}
	for _, is := range warn {
		if is.Severity == SeverityInfo {
			t.Fatalf("info issue survived warning threshold: %+v", is)
		}
	}

	errOnly := FilterMin(in, SeverityError)
	if len(errOnly) != 1 || errOnly[0].Line != 2 {
		t.Fatalf("error threshold: expected just line 2, got %+v", errOnly)
	}
}

func TestFilterMin_Monotonic(t *testing.T) {
	in := sample()
	info := FilterMin(in, SeverityInfo)
	warn := FilterMin(in, SeverityWarning)
	errs := FilterMin(in, SeverityError)
	if len(warn) > len(info) || len(errs) > len(warn) {
		t.Fatalf("filtering is not monotonic: info=%d warning=%d error=%d",
			len(info), len(warn), len(errs))
	}
}

func TestFilterMin_PreservesOrder(t *testing.T) {
	in := sample()
	out := FilterMin(in, SeverityWarning)
	for i := 1; i < len(out); i++ {
		// The sample's surviving issues are already in (file, line) order;
		// any reorder would show up here.
		if out[i-1].File > out[i].File {
			t.Fatalf("relative order changed: %+v before %+v", out[i-1], out[i])
		}
	}
}

func TestRank(t *testing.T) {
	if Rank(SeverityError) <= Rank(SeverityWarning) || Rank(SeverityWarning) <= Rank(SeverityInfo) {
		t.Fatal("severity ranking broken")
	}
	if Rank("bogus") != Rank(SeverityInfo) {
		t.Fatal("unknown severity should rank as info")
	}
}
