package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ngalkin/geobot/internal/geo"
	"github.com/ngalkin/geobot/internal/sheet"
	"github.com/ngalkin/geobot/internal/site"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <site>",
	Short: "Resolve every lift name in the site's worksheet",
	Long: `Resolve reads the name column of the site's worksheet, resolves each
name through Overpass (and Nominatim as a last resort) and writes
lat/lon/osm_name/osm_type/osm_id/aerialway back into columns E..J.
Rows whose name cell is blank are skipped; unresolvable names get their
result columns blanked so stale coordinates never survive a re-run.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("xlsx", "", "resolve a local XLSX workbook instead of Google Sheets")
	resolveCmd.Flags().Bool("dry-run", false, "resolve without writing results back")
	resolveCmd.Flags().Int("max-retries", 3, "attempts per Overpass mirror")
	resolveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s Overpass, 30s Nominatim)")
	resolveCmd.Flags().Duration("interval", 1200*time.Millisecond, "minimum delay between rows (public API throttle)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, resolver, err := siteResolver(cmd, args[0])
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cmd, p)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureHeaders(ctx, p.Headers); err != nil {
		return err
	}
	rows, err := store.Rows(ctx)
	if err != nil {
		return err
	}
	if len(rows) <= 1 {
		fmt.Println("No records to process.")
		return nil
	}
	fmt.Printf("Records to process: %d\n", len(rows)-1)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	interval, _ := cmd.Flags().GetDuration("interval")
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	resolved, missed := 0, 0
	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) == 0 {
			continue
		}
		name := geo.CleanName(row[0])
		if name == "" {
			continue
		}

		// Public Overpass/Nominatim instances expect polite clients.
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		fmt.Printf("[%d] OSM search: %s\n", rowNum, name)
		f := resolver.Resolve(ctx, name, geo.FallbackQueries(name, p.FallbackSuffixes))

		values := make([]string, sheet.ResultWidth)
		if f != nil {
			values = resultValues(f)
			resolved++
			fmt.Printf("   found %s:%s | %s | %.6f, %.6f\n", f.OSMType, f.OSMID, f.Aerialway, f.Lat, f.Lon)
		} else {
			missed++
			fmt.Println("   not found")
		}
		if !dryRun {
			if err := store.WriteResult(ctx, rowNum, values); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Done. Resolved %d, not found %d.\n", resolved, missed)
	return nil
}

// resultValues renders a feature into the E..J result columns.
func resultValues(f *geo.Feature) []string {
	return []string{
		fmt.Sprintf("%.6f", f.Lat),
		fmt.Sprintf("%.6f", f.Lon),
		f.Name,
		f.OSMType,
		f.OSMID,
		f.Aerialway,
	}
}

// siteResolver looks up the site profile and builds the resolver for it.
func siteResolver(cmd *cobra.Command, key string) (site.Profile, *geo.Resolver, error) {
	profiles, err := site.All(viper.GetString("sites_file"))
	if err != nil {
		return site.Profile{}, nil, err
	}
	p, err := site.Get(profiles, key)
	if err != nil {
		return site.Profile{}, nil, err
	}
	bbox, err := p.BoundingBox()
	if err != nil {
		return site.Profile{}, nil, fmt.Errorf("site %q: %w", p.Key, err)
	}
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	resolver, err := geo.NewResolver(geo.Config{
		BBox:        bbox,
		Profile:     p.VariantProfile(),
		MaxRetries:  maxRetries,
		UserAgent:   viper.GetString("user_agent"),
		HTTPTimeout: timeout,
		Logf:        debugf,
	})
	if err != nil {
		return site.Profile{}, nil, err
	}
	return p, resolver, nil
}

func openStore(ctx context.Context, cmd *cobra.Command, p site.Profile) (sheet.RowStore, error) {
	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		return sheet.OpenXLSX(path, p.Worksheet)
	}
	credentials := viper.GetString("credentials_file")
	if credentials == "" {
		return nil, fmt.Errorf("no Google credentials configured: set credentials_file in the config, GEOBOT_CREDENTIALS_FILE, or use --xlsx")
	}
	spreadsheetID := viper.GetString("spreadsheet_id")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet configured: set spreadsheet_id in the config or GEOBOT_SPREADSHEET_ID")
	}
	return sheet.OpenGoogleSheet(ctx, credentials, spreadsheetID, p.Worksheet)
}
