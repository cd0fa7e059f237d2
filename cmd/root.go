package cmd

import (
	"fmt"
	"os"

	"job-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the job-tracker entry point; subcommands register themselves in init.
var RootCmd = &cobra.Command{
	Use:   "job-tracker",
	Short: "Job Application Tracker",
	Long: `Job Tracker syncs Simplify.jobs CSV exports into a local record store
and lists the tracked applications as a searchable, column-configurable table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configPath is the directory holding the .env file.
var configPath string

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: logger.FormatConsole})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing the .env file")
}
