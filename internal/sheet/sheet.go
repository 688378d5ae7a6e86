// Package sheet adapts tabular row stores: the worksheet holding lift
// names in columns A..D and receiving resolution results in columns E..J.
package sheet

import (
	"context"
	"fmt"
)

// ResultWidth is the number of result columns (E..J: lat, lon, osm_name,
// osm_type, osm_id, aerialway).
const ResultWidth = 6

// RowStore is one worksheet of the source-of-record spreadsheet.
type RowStore interface {
	// EnsureHeaders fills only the blank cells of the header row.
	EnsureHeaders(ctx context.Context, headers []string) error
	// Rows returns every row including the header, row 1 first.
	Rows(ctx context.Context) ([][]string, error)
	// WriteResult writes the result columns of a 1-based row; values must
	// have ResultWidth entries.
	WriteResult(ctx context.Context, row int, values []string) error
	Close() error
}

func resultRange(row int) string {
	return fmt.Sprintf("E%d:J%d", row, row)
}

func checkResultValues(values []string) error {
	if len(values) != ResultWidth {
		return fmt.Errorf("result row has %d values, want %d", len(values), ResultWidth)
	}
	return nil
}
