package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"job-tracker/feature/applications"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncObject    string
	syncDryRun    bool
	syncNoArchive bool
	syncJSON      bool
)

// syncCmd imports a CSV export into the record store.
var syncCmd = &cobra.Command{
	Use:   "sync [file.csv]",
	Short: "Sync a Simplify.jobs CSV export into the tracker",
	Long: `Reconciles a CSV export against the record store. New applications are
inserted, already tracked ones are skipped. The whole file is committed or
rejected as one batch.

Examples:
  # Import a local export
  job-tracker sync applications.csv

  # Show what would be imported
  job-tracker sync applications.csv --dry-run

  # Import an export stored in the archive bucket
  job-tracker sync --object imports/2024-01.csv`,
	Args: func(cmd *cobra.Command, args []string) error {
		if syncObject == "" && len(args) != 1 {
			return fmt.Errorf("expected one CSV file or --object")
		}
		if syncObject != "" && len(args) > 0 {
			return fmt.Errorf("a CSV file and --object are mutually exclusive")
		}
		return nil
	},
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncObject, "object", "", "Import an object from the archive bucket instead of a local file")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Plan the import without writing")
	syncCmd.Flags().BoolVar(&syncNoArchive, "no-archive", false, "Do not archive the file to the bucket")
	syncCmd.Flags().BoolVar(&syncJSON, "json", false, "Print the import result as JSON")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
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

	opts := applications.ImportOptions{DryRun: syncDryRun, Archive: !syncNoArchive}

	var result *applications.ImportResult
	if syncObject != "" {
		env.logger.Info("Syncing archived export", zap.String("object", syncObject))
		result, err = svc.ImportObject(ctx, syncObject, opts)
	} else {
		f, ferr := os.Open(args[0])
		if ferr != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], ferr)
		}
		defer f.Close()

		env.logger.Info("Syncing export", zap.String("file", args[0]))
		result, err = svc.ImportCSV(ctx, f, opts)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if syncJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printImportResult(cmd, result)
	return nil
}

func printImportResult(cmd *cobra.Command, result *applications.ImportResult) {
	out := cmd.OutOrStdout()
	s := result.Summary

	if result.DryRun {
		_, _ = fmt.Fprintln(out, headerStyle.Render("Dry run: nothing was written"))
	} else {
		_, _ = fmt.Fprintln(out, okStyle.Render("Data synced successfully!"))
	}
	_, _ = fmt.Fprintf(out, "Batch:       %s\n", result.BatchID)
	_, _ = fmt.Fprintf(out, "Rows:        %d\n", s.TotalRows)
	_, _ = fmt.Fprintf(out, "Planned:     %d\n", s.Inserts)
	_, _ = fmt.Fprintf(out, "Inserted:    %d\n", result.Inserted)
	_, _ = fmt.Fprintf(out, "Existing:    %d\n", s.Existing)
	_, _ = fmt.Fprintf(out, "Duplicates:  %d\n", s.Duplicates)
	if result.Archive != "" {
		_, _ = fmt.Fprintf(out, "Archived to: %s\n", result.Archive)
	}
}
