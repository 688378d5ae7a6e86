package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage geobot configuration",
	Long:  `Configure geobot settings including credentials and site profiles.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file in your home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".geobot.yaml")

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file already exists at %s\n", configPath)
			return nil
		}

		defaultConfig := `# Geobot Configuration
# Copy this to ~/.geobot.yaml and customize for your setup

# Google Sheets access
credentials_file: ""   # service-account JSON key, e.g. ~/keys/geo-content.json
spreadsheet_id: ""     # id from the spreadsheet URL (not its title)

# Client identity sent to the public OSM services. Keep a contact address
# in it; both Overpass and Nominatim ask for one.
user_agent: "geobot/1.0 (contact: geo-team@example.com)"

# Extra site profiles merged over the built-ins (shymbulak, catedral,
# garmisch). Points at a YAML file shaped like the example below.
sites_file: ""

# Example sites file:
#
# sites:
#   rosa-khutor:
#     title: Rosa Khutor (Sochi, RU)
#     spreadsheet: POIs
#     worksheet: Rosa Khutor
#     bbox: [43.60, 40.20, 43.70, 40.40]   # min lat, min lon, max lat, max lon
#     generic_words: [gondola, cable car, chairlift, lift, ropeway]
#     aliases:
#       Olympia: [Olimpia, Olympia Gondola]
#     context_terms: [Rosa Khutor, Krasnaya Polyana, Sochi, Russia]
#     fallback_suffixes: [Rosa Khutor, Krasnaya Polyana, Sochi]
#     headers: [Name_en, Name_ru, Genitive_ru, Locative_ru, lat, lon, osm_name, osm_type, osm_id, aerialway]
`

		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o600); err != nil {
			return fmt.Errorf("error writing config file: %w", err)
		}

		fmt.Printf("Configuration file created at %s\n", configPath)
		fmt.Println("Edit it to set your credentials file and spreadsheet id.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
