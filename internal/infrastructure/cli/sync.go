package cli

import (
	"fmt"

	"github.com/rmarchan/tablero/internal/infrastructure/tracker"
	"github.com/rmarchan/tablero/pkg/application"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch a fresh work-item snapshot from the configured tracker",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		cfg, err := tracker.LoadConfig(repo)
		if err != nil {
			return err
		}
		fetcher, err := tracker.NewFetcher(cfg)
		if err != nil {
			return err
		}

		svc := application.NewSyncService(repo, nil)
		snapshot, err := svc.Sync(cmd.Context(), fetcher)
		if err != nil {
			return err
		}

		fmt.Printf("Synced %d work items from %s\n", len(snapshot.Items), snapshot.Source)
		return nil
	},
}

var syncImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and install a snapshot exported elsewhere",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		svc := application.NewSyncService(repo, nil)
		snapshot, err := svc.Import(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d work items from %s\n", len(snapshot.Items), args[0])
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncImportCmd)
	RootCmd.AddCommand(syncCmd)
}
