package cli

import (
	"fmt"

	"github.com/rmarchan/tablero/pkg/storage"
	"github.com/spf13/cobra"
)

var initJurisdiction string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a tablero workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}

		repo := storage.NewFilesystemRepository(root)
		if err := repo.Initialize(); err != nil {
			return err
		}

		cfg := storage.DefaultStagesConfig()
		if initJurisdiction != "" {
			cfg.Jurisdiction = initJurisdiction
		}
		if err := repo.SaveStages(cfg); err != nil {
			return err
		}

		fmt.Printf("Initialized %s workspace (holiday calendar: %s)\n", storage.TableroDir, cfg.Jurisdiction)
		fmt.Println("Next: configure a tracker in .tablero/tracker.yaml and run 'tablero sync'.")
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initJurisdiction, "jurisdiction", "", "Holiday calendar jurisdiction (AR or ES)")
	RootCmd.AddCommand(initCmd)
}
