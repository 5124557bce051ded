package cli

import (
	"github.com/geopandas/geodatasets/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "geodatasets",
	Short: "Fetch open geospatial sample datasets",
	Long: `geodatasets resolves named geospatial datasets to remote URLs or verified
local files, downloading and caching them on first use. Dataset names are
matched loosely: "GeoDa AirBnB", "geoda_airbnb" and "geoda.airbnb" all refer
to the same dataset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
