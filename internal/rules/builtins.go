package rules

// Builtin categories land in the registry here, in catalog order. Report
// ordering keys on category declaration order, so registration must not be
// left to per-file init sequencing (which follows filenames).
func init() {
	registerSelectionRules()
	registerContextRules()
	registerBrowserRules()
	registerFormsRules()
}
