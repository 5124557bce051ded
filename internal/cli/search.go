package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/geopandas/geodatasets/catalog"
	"github.com/spf13/cobra"
)

var (
	searchNameFilter     string
	searchKeywordFilter  string
	searchGeometryFilter string
	searchJSON           bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "List datasets matching the given filters",
	Long: `List datasets in the registry. The positional query is a keyword filter,
matched as a case-insensitive substring against every string attribute of a
dataset. Use the flags to narrow by name, by geometry type, or by an
additional keyword.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchNameFilter, "name", "", "Filter by name substring")
	searchCmd.Flags().StringVar(&searchKeywordFilter, "keyword", "", "Filter by keyword in any attribute")
	searchCmd.Flags().StringVar(&searchGeometryFilter, "geometry-type", "", "Filter by geometry type (Point, LineString, Polygon, Mixed)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

// searchEntry represents one dataset for display.
type searchEntry struct {
	Name         string `json:"name"`
	GeometryType string `json:"geometry_type,omitempty"`
	NRows        int    `json:"nrows,omitempty"`
	License      string `json:"license,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	root, err := loadRegistry()
	if err != nil {
		return err
	}

	var opts []catalog.FilterOption
	if len(args) > 0 {
		opts = append(opts, catalog.WithKeyword(args[0]))
	}
	if searchNameFilter != "" {
		opts = append(opts, catalog.WithName(searchNameFilter))
	}
	if searchKeywordFilter != "" {
		opts = append(opts, catalog.WithKeyword(searchKeywordFilter))
	}
	if searchGeometryFilter != "" {
		opts = append(opts, catalog.WithGeometryType(searchGeometryFilter))
	}
	if len(opts) > 0 {
		root = root.Filter(opts...)
	}

	flat := root.Flatten()
	var entries []searchEntry
	for _, name := range root.Names() {
		d := flat[name]
		entries = append(entries, searchEntry{
			Name:         d.Name,
			GeometryType: d.GeometryType,
			NRows:        d.NRows,
			License:      d.License,
			Description:  d.Description,
			URL:          d.URL,
		})
	}

	if searchJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling search results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No datasets found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGEOMETRY\tNROWS\tLICENSE\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.Name, e.GeometryType, e.NRows, e.License, e.Description)
	}
	return w.Flush()
}
