// Package export implements the spreadsheet export collaborator on top of
// the Google Sheets API.
package export

import (
	"context"

	"fleetops/config"
	"fleetops/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type sheetsExporter struct {
	spreadsheetID string
	sheetsService *sheets.Service
}

// NewSheetsExporter creates a RecordExporter that appends record blocks to
// the configured spreadsheet. Returns nil when export is not configured;
// callers treat a nil exporter as "export unavailable".
func NewSheetsExporter(ctx context.Context, cfg *config.Config) (service.RecordExporter, error) {
	if cfg.Export == nil || cfg.Export.SpreadsheetID == "" {
		return nil, nil // Export is optional
	}

	sheetsService, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.Export.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Sheets client")
	}

	return &sheetsExporter{
		spreadsheetID: cfg.Export.SpreadsheetID,
		sheetsService: sheetsService,
	}, nil
}

// Export appends a title row, a header row and the record rows to the
// spreadsheet in one call.
func (e *sheetsExporter) Export(ctx context.Context, title string, headers []string, rows [][]string) error {
	values := make([][]any, 0, len(rows)+2)
	values = append(values, []any{title})

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	values = append(values, headerRow)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		values = append(values, cells)
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err := e.sheetsService.Spreadsheets.Values.
		Append(e.spreadsheetID, "A1", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrap(err, "failed to append rows to spreadsheet")
	}

	return nil
}
