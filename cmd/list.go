package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listSearch string
	listMode   string
	listAll    bool
	listJSON   bool
)

// listCmd prints the tracked applications.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	Long: `Lists tracked applications restricted to the visible columns (see 'columns').

Examples:
  # Applications mentioning "acme" in title, company or notes
  job-tracker list --search acme

  # Typo tolerant search
  job-tracker list --search enginer --mode fulltext

  # Every column regardless of preferences
  job-tracker list --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		svc, err := env.applications(ctx)
		if err != nil {
			return err
		}

		listing, err := svc.Display(ctx, listSearch, listMode, listAll)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(listing)
		}

		if listing.Total == 0 {
			if listSearch != "" {
				_, _ = fmt.Fprintln(out, "No applications found matching your search.")
			} else {
				_, _ = fmt.Fprintln(out, "No applications found. Sync a CSV file to get started!")
			}
			return nil
		}

		printTable(out, listing.Columns, listing.Rows)
		_, _ = fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d application(s)", listing.Total)))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by job title, company or notes")
	listCmd.Flags().StringVar(&listMode, "mode", "substring", "Search mode: substring or fulltext")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every column")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the listing as JSON")

	RootCmd.AddCommand(listCmd)
}
