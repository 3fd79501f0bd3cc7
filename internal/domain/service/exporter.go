package service

import "context"

// RecordExporter writes a flat record list to an external artifact such as
// a spreadsheet. Failures are surfaced to the operator; there is no retry.
type RecordExporter interface {
	// Export writes the rows under the given title. Headers label the
	// columns and every row must have the same arity as headers.
	Export(ctx context.Context, title string, headers []string, rows [][]string) error
}
