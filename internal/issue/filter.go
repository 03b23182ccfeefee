package issue

// FilterMin returns the issues whose severity rank is at or above min,
// preserving relative order. An empty min is the identity: the input slice
// is returned as-is, not copied.
func FilterMin(in []Issue, min string) []Issue {
	if min == "" {
		return in
	}
	want := Rank(min)
	var out []Issue
	for _, is := range in {
		if Rank(is.Severity) >= want {
			out = append(out, is)
		}
	}
	return out
}
