package commands

// BulkResult reports the outcome of a bulk operation. Affected counts the
// orders actually mutated; Skipped counts the matched orders the operation
// could not legally apply to.
type BulkResult struct {
	Affected int
	Skipped  int
}
