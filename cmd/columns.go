package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"job-tracker/feature/applications/models"

	"github.com/spf13/cobra"
)

// columnsCmd shows the column visibility preferences.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show which columns 'list' displays",
	Args:  cobra.NoArgs,
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

		prefs, err := svc.Preferences(ctx)
		if err != nil {
			return err
		}
		printPreferences(cmd.OutOrStdout(), prefs)
		return nil
	},
}

// columnsSetCmd updates column visibility.
var columnsSetCmd = &cobra.Command{
	Use:   "set COLUMN=true|false...",
	Short: "Show or hide columns",
	Long: `Sets the visibility of one or more columns.

Examples:
  job-tracker columns set "Status Date=true" Notes=false`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		changes, err := parseColumnArgs(args)
		if err != nil {
			return err
		}

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		svc, err := env.applications(ctx)
		if err != nil {
			return err
		}

		prefs, err := svc.SetPreferences(ctx, changes)
		if err != nil {
			return err
		}
		printPreferences(cmd.OutOrStdout(), prefs)
		return nil
	},
}

func init() {
	columnsCmd.AddCommand(columnsSetCmd)
	RootCmd.AddCommand(columnsCmd)
}

// parseColumnArgs reads COLUMN=BOOL arguments. Column names match case-insensitively.
func parseColumnArgs(args []string) (map[string]bool, error) {
	changes := make(map[string]bool, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q, expected COLUMN=true|false", arg)
		}
		visible, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid visibility %q for column %q", raw, name)
		}

		column := canonicalColumn(strings.TrimSpace(name))
		if column == "" {
			return nil, fmt.Errorf("unknown column %q (known: %s)", name, strings.Join(models.DisplayColumns, ", "))
		}
		changes[column] = visible
	}
	return changes, nil
}

func canonicalColumn(name string) string {
	for _, c := range models.DisplayColumns {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return ""
}

func printPreferences(w io.Writer, prefs map[string]bool) {
	for _, c := range models.DisplayColumns {
		mark := dimStyle.Render("[ ]")
		if prefs[c] {
			mark = okStyle.Render("[x]")
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", mark, c)
	}
}
