package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(urlCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url <name>",
	Short: "Print the remote URL of a dataset",
	Long:  `Resolve a dataset name and print the URL it can be fetched from. Nothing is downloaded.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}
		url, err := r.GetURL(args[0])
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}
