package sheet

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type googleSheet struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// OpenGoogleSheet authorizes with a service-account JSON key and returns
// the named worksheet of the spreadsheet.
func OpenGoogleSheet(ctx context.Context, credentialsFile, spreadsheetID, worksheet string) (RowStore, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &googleSheet{svc: svc, spreadsheetID: spreadsheetID, worksheet: worksheet}, nil
}

func (g *googleSheet) rangeName(a1 string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(g.worksheet, "'", "''"), a1)
}

func (g *googleSheet) EnsureHeaders(ctx context.Context, headers []string) error {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.rangeName("1:1")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	row := make([]string, len(headers))
	if len(resp.Values) > 0 {
		for i := range row {
			if i < len(resp.Values[0]) {
				row[i] = fmt.Sprint(resp.Values[0][i])
			}
		}
	}
	changed := false
	out := make([]interface{}, len(headers))
	for i, title := range headers {
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			cell = title
			changed = true
		}
		out[i] = cell
	}
	if !changed {
		return nil
	}
	_, err = g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, g.rangeName("A1"), &sheets.ValueRange{Values: [][]interface{}{out}}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

func (g *googleSheet) Rows(ctx context.Context) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.rangeName("A:J")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	rows := make([][]string, len(resp.Values))
	for i, r := range resp.Values {
		row := make([]string, len(r))
		for j, v := range r {
			row[j] = fmt.Sprint(v)
		}
		rows[i] = row
	}
	return rows, nil
}

func (g *googleSheet) WriteResult(ctx context.Context, row int, values []string) error {
	if err := checkResultValues(values); err != nil {
		return err
	}
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, g.rangeName(resultRange(row)), &sheets.ValueRange{Values: [][]interface{}{out}}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func (g *googleSheet) Close() error { return nil }
