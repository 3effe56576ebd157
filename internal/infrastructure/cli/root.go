package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "tablero",
	Version: Version,
	Short:   "A project tracking dashboard driven by work-item snapshots",
	Long: `Tablero turns a flat work-item snapshot from your tracker into a
stage and deliverable dashboard: progress roll-ups, effort figures,
and semaphore signals for delivery and hour consumption.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "project", "", "Project root directory (defaults to the working directory)")
}
