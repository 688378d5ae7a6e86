package sheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxFile is a local workbook, useful when the Google spreadsheet is not
// reachable or the run must stay offline.
type xlsxFile struct {
	f         *excelize.File
	path      string
	worksheet string
	dirty     bool
}

func OpenXLSX(path, worksheet string) (RowStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	idx, err := f.GetSheetIndex(worksheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to look up worksheet %q: %w", worksheet, err)
	}
	if idx < 0 {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no worksheet %q (sheets: %s)",
			path, worksheet, strings.Join(f.GetSheetList(), ", "))
	}
	return &xlsxFile{f: f, path: path, worksheet: worksheet}, nil
}

func (x *xlsxFile) EnsureHeaders(_ context.Context, headers []string) error {
	rows, err := x.f.GetRows(x.worksheet)
	if err != nil {
		return fmt.Errorf("failed to read worksheet: %w", err)
	}
	var current []string
	if len(rows) > 0 {
		current = rows[0]
	}
	for i, title := range headers {
		if i < len(current) && strings.TrimSpace(current[i]) != "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := x.f.SetCellStr(x.worksheet, cell, title); err != nil {
			return fmt.Errorf("failed to set header %s: %w", cell, err)
		}
		x.dirty = true
	}
	return nil
}

func (x *xlsxFile) Rows(context.Context) ([][]string, error) {
	rows, err := x.f.GetRows(x.worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	return rows, nil
}

func (x *xlsxFile) WriteResult(_ context.Context, row int, values []string) error {
	if err := checkResultValues(values); err != nil {
		return err
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(5+i, row)
		if err != nil {
			return err
		}
		if err := x.f.SetCellStr(x.worksheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	x.dirty = true
	return nil
}

func (x *xlsxFile) Close() error {
	var saveErr error
	if x.dirty {
		if err := x.f.Save(); err != nil {
			saveErr = fmt.Errorf("failed to save workbook %s: %w", x.path, err)
		}
	}
	if err := x.f.Close(); err != nil && saveErr == nil {
		saveErr = fmt.Errorf("failed to close workbook %s: %w", x.path, err)
	}
	return saveErr
}
