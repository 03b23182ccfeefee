package rules

// Field-by-field validation state that createForm integrates.
func registerFormsRules() {
	Register("forms",
		MustNew(
			"FRM-FIELD-STATE",
			`ref<string>\(''\).*Error.*ref<string>`,
			"Manual form field validation state",
			"Use createForm() for integrated validation",
			"info",
		),
		MustNew(
			"FRM-MANUAL-VALIDATION",
			`if\s*\(\s*!\w+\.value\s*\)\s*\{\s*\w+Error`,
			"Manual validation logic",
			"Use form.register() with rules array",
			"warning",
		),
	)
}
