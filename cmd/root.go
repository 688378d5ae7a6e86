package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geobot",
	Short: "Resolve ski-lift names to OpenStreetMap features",
	Long: `Geobot reads lift and POI names from a spreadsheet, resolves each one
against the Overpass API (with a Nominatim fallback) inside the bounding box
of a configured site, and writes the coordinates and OSM metadata back into
the adjacent columns.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.geobot.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (per-variant queries and soft failures)")
	rootCmd.PersistentFlags().String("sites-file", "", "YAML file with extra site profiles (or set GEOBOT_SITES_FILE)")
	rootCmd.PersistentFlags().String("credentials-file", "", "Google service-account JSON key (or set GEOBOT_CREDENTIALS_FILE)")
	rootCmd.PersistentFlags().String("spreadsheet-id", "", "Google spreadsheet id (or set GEOBOT_SPREADSHEET_ID)")
	rootCmd.PersistentFlags().String("user-agent", "", "User-Agent sent to the public OSM services")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("sites_file", rootCmd.PersistentFlags().Lookup("sites-file"))
	viper.BindPFlag("credentials_file", rootCmd.PersistentFlags().Lookup("credentials-file"))
	viper.BindPFlag("spreadsheet_id", rootCmd.PersistentFlags().Lookup("spreadsheet-id"))
	viper.BindPFlag("user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".geobot")
	}

	viper.SetEnvPrefix("geobot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

func debugf(format string, args ...any) {
	if viper.GetBool("debug") {
		fmt.Printf("   "+format+"\n", args...)
	}
}
