package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <name>...",
	Short: "Download datasets into the cache",
	Long: `Download one or more datasets into the local cache without printing their
paths. Useful to pre-populate the cache before going offline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}
		return r.Fetch(args...)
	},
}
