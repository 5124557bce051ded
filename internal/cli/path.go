package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Print the local path of a dataset, downloading it if needed",
	Long: `Resolve a dataset name and print the path of its verified local copy.
The dataset is downloaded into the cache on first use; datasets that declare
archive members are extracted and the member path is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}
		path, err := r.GetPath(args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}
