package rules

// Raw provide/inject usage that createContext replaces.
func registerContextRules() {
	Register("context",
		MustNew(
			"CTX-INJECT-UNTYPED",
			`inject\(['"][^"']*['"]\)`,
			"Unsafe provide/inject - no type safety",
			"Use createContext() for type-safe DI",
			"error",
		),
		MustNew(
			"CTX-PROVIDE-MANUAL",
			`provide\(['"][^"']*['"],`,
			"Manual provide - consider createContext()",
			"Use createContext() for better error handling",
			"warning",
		),
	)
}
