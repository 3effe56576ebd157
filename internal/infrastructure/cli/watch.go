package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rmarchan/tablero/internal/infrastructure/watch"
	"github.com/rmarchan/tablero/pkg/application"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the dashboard whenever a workspace file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		svc := application.NewReportService(repo, nil)

		render := func() {
			report, err := svc.BuildReport()
			if err != nil {
				fmt.Printf("Report failed: %v\n", err)
				return
			}
			if err := outputStatusText(report); err != nil {
				fmt.Printf("Render failed: %v\n", err)
			}
		}

		render()
		if os.Getenv("TABLERO_WATCH_ONCE") == "true" {
			return nil
		}
		fmt.Println("\nWatching for workspace changes... (ctrl+c to stop)")

		watcher, err := watch.NewWorkspaceWatcher(repo.Root(), watchDebounce, func(ev watch.ChangeEvent) {
			fmt.Printf("\n%s %s at %s\n\n", ev.File, ev.ChangeType, time.Now().Format("15:04:05"))
			render()
		})
		if err != nil {
			return err
		}
		return watcher.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet window before re-rendering")
	RootCmd.AddCommand(watchCmd)
}
