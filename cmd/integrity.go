package cmd

import (
	"fmt"

	"job-tracker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the record store schema and the import archive",
	Long: `Checks that the record store tables carry every expected column and, when
the import archive is enabled, that the bucket and import prefix exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		svc := integrity.NewService(env.db, env.store, env.cfg.Storage, env.logger)
		failed := false

		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			_, _ = fmt.Fprintf(out, "Schema:  %s\n", okStyle.Render("OK"))
		} else {
			failed = true
			_, _ = fmt.Fprintf(out, "Schema:  %s %s\n", failStyle.Render("FAIL"), report.Summary())
		}

		if !svc.ArchiveEnabled() {
			_, _ = fmt.Fprintf(out, "Archive: %s\n", dimStyle.Render("disabled"))
		} else {
			missing, err := svc.CheckArchive(ctx)
			if err != nil {
				return fmt.Errorf("archive check failed: %w", err)
			}
			switch {
			case len(missing) == 0:
				_, _ = fmt.Fprintf(out, "Archive: %s\n", okStyle.Render("OK"))
			case fixFlag:
				env.logger.Info("Fixing archive", zap.Strings("missing", missing))
				if err := svc.FixArchive(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix archive: %w", err)
				}
				_, _ = fmt.Fprintf(out, "Archive: %s %v\n", warnStyle.Render("FIXED"), missing)
			default:
				failed = true
				_, _ = fmt.Fprintf(out, "Archive: %s missing %v (run with --fix)\n", failStyle.Render("FAIL"), missing)
			}
		}

		if failed {
			return fmt.Errorf("integrity checks failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create a missing archive bucket and prefix")
	RootCmd.AddCommand(integrityCmd)
}
