package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ngalkin/geobot/internal/site"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List configured site profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := site.All(viper.GetString("sites_file"))
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(profiles))
		for k := range profiles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := profiles[k]
			bbox, err := p.BoundingBox()
			if err != nil {
				return fmt.Errorf("site %q: %w", k, err)
			}
			fmt.Printf("%-12s %s\n", k, p.Title)
			fmt.Printf("             bbox %s, spreadsheet %q, worksheet %q, %d aliases, %d context terms\n",
				bbox, p.Spreadsheet, p.Worksheet, len(p.Aliases), len(p.ContextTerms))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}
