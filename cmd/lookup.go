package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngalkin/geobot/internal/geo"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <site> <name>",
	Short: "Resolve a single name and print the match",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, resolver, err := siteResolver(cmd, args[0])
		if err != nil {
			return err
		}
		name := geo.CleanName(strings.Join(args[1:], " "))
		if name == "" {
			return fmt.Errorf("empty name")
		}

		f := resolver.Resolve(cmd.Context(), name, geo.FallbackQueries(name, p.FallbackSuffixes))
		if f == nil {
			fmt.Println("not found")
			return nil
		}
		fmt.Printf("%s:%s\n", f.OSMType, f.OSMID)
		fmt.Printf("name:      %s\n", f.Name)
		fmt.Printf("coords:    %.6f, %.6f\n", f.Lat, f.Lon)
		if f.Aerialway != "" {
			fmt.Printf("aerialway: %s\n", f.Aerialway)
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().Int("max-retries", 3, "attempts per Overpass mirror")
	lookupCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s Overpass, 30s Nominatim)")
	rootCmd.AddCommand(lookupCmd)
}
