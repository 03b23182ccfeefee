package rules

// Manual selection-state logic that createSelection / createSingle replace.
func registerSelectionRules() {
	Register("selection",
		MustNew(
			"SEL-REF-ARRAY",
			`ref<.*\[\]>\(\[\]\)`,
			"Manual array selection - consider createSelection()",
			"Replace with createSelection({ multiple: true })",
			"warning",
		),
		MustNew(
			"SEL-INCLUDES-FILTER",
			`\.includes\(.*\)\s*\?\s*.*\.filter\(`,
			"Manual selection filtering - v0 handles this automatically",
			"Use selection.isSelected() and selection composables",
			"info",
		),
		MustNew(
			"SEL-SPLICE",
			`splice\(\w+,\s*1\)`,
			"Manual array manipulation for selection",
			"Use selection.toggle() or selection.remove()",
			"warning",
		),
		MustNew(
			"SEL-SINGLE-TOGGLE",
			`selected\.value\s*=\s*selected\.value\s*===\s*.*\s*\?\s*null`,
			"Manual single selection toggle logic",
			"Use createSingle() composable",
			"warning",
		),
	)
}
