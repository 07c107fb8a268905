package evolution

// Test-only bridge exposing private helpers to white-box tests in
// evolution_test. The _test.go suffix keeps it out of production builds.
var (
	// ExportedOrdinal exposes ordinal for diagnostics-format tests.
	ExportedOrdinal = ordinal
	// ExportedRateCursorAfter exposes the shared merge-scan cursor.
	ExportedRateCursorAfter = rateCursorAfter
)
