package cli

import (
	"fmt"

	"github.com/rmarchan/tablero/pkg/storage"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show the stage plan and deliverable schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		cfg, err := repo.LoadStages()
		if err != nil {
			return err
		}

		fmt.Printf("Holiday calendar: %s\n\n", cfg.Jurisdiction)
		for _, stage := range cfg.Stages {
			fmt.Printf("%s (deliverables %d..%d)", stage.Name, stage.DeliverableRange.Start, stage.DeliverableRange.End)
			if !stage.DueDate.IsZero() {
				fmt.Printf("  due %s", stage.DueDate.Format("2006-01-02"))
			}
			fmt.Println()

			for n := stage.DeliverableRange.Start; n <= stage.DeliverableRange.End; n++ {
				due, ok := cfg.Schedule.DueDates[n]
				if !ok {
					continue
				}
				fmt.Printf("  Deliverable %2d  due %s\n", n, due.Format("2006-01-02"))
			}
		}
		return nil
	},
}

var stagesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rewrite stages.yaml with the built-in stage plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		if err := repo.SaveStages(storage.DefaultStagesConfig()); err != nil {
			return err
		}
		fmt.Println("Stage plan reset to the built-in defaults.")
		return nil
	},
}

func init() {
	stagesCmd.AddCommand(stagesResetCmd)
	RootCmd.AddCommand(stagesCmd)
}
