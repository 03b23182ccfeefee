package rules

// Hand-rolled browser/SSR plumbing with composable replacements.
func registerBrowserRules() {
	Register("browser",
		MustNew(
			"BRW-SSR-CHECK",
			`typeof window !== ['"]undefined['"]`,
			"Manual SSR check - not tree-shakeable",
			"Use IN_BROWSER constant from @vuetify/v0/constants",
			"info",
		),
		MustNew(
			"BRW-RESIZE-OBSERVER",
			`new ResizeObserver`,
			"Manual ResizeObserver - no auto-cleanup",
			"Use useResizeObserver() composable",
			"warning",
		),
		MustNew(
			"BRW-RESIZE-LISTENER",
			`addEventListener\(['"]resize['"]`,
			"Manual resize listener - memory leak potential",
			"Use useEventListener() for auto-cleanup",
			"warning",
		),
		MustNew(
			"BRW-INTERSECTION-OBSERVER",
			`new IntersectionObserver`,
			"Manual IntersectionObserver setup",
			"Use useIntersectionObserver() composable",
			"info",
		),
	)
}
