package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rmarchan/tablero/pkg/application"
	"github.com/rmarchan/tablero/pkg/domain/metrics"
	"github.com/spf13/cobra"
)

// Flag variables for status command
var (
	statusJSON    bool
	statusStage   int
	statusStories bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stage and deliverable dashboard",
	Long: `Show the stage and deliverable dashboard derived from the last
synced snapshot.

Use flags to narrow the view:
  --stage, -e    Show a single stage by id
  --stories      Include the story rows under each deliverable
  --json         Output in JSON format

Examples:
  tablero status
  tablero status --stage 2 --stories
  tablero status --json`,
	RunE: runStatusCmd,
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	svc := application.NewReportService(repo, nil)
	report, err := svc.BuildReport()
	if err != nil {
		return err
	}

	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	return outputStatusText(report)
}

func outputStatusText(report *application.DashboardReport) error {
	fmt.Printf("Snapshot: %s (fetched %s)\n", report.Source, report.FetchedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Overall progress: %d%%\n", report.OverallProgress)
	fmt.Printf("Effort: %.0f estimated / %.0f corrected / %.0f completed / %.0f weighted\n",
		report.TotalEffort.Estimated, report.TotalEffort.Corrected,
		report.TotalEffort.Completed, report.TotalEffort.Weighted)

	for _, stage := range report.Stages {
		if statusStage > 0 && stage.ID != statusStage {
			continue
		}

		fmt.Printf("\n%s  %d%%  [risk: %s]", stage.Name, stage.Progress, stage.Risk)
		if !stage.DueDate.IsZero() {
			fmt.Printf("  due %s (%d business days left)", stage.DueDate.Format("2006-01-02"), stage.DaysRemaining)
		}
		fmt.Println()

		for _, d := range stage.Deliverables {
			fmt.Printf("  %s %3d%%  %s  %s\n",
				deliverableLabel(d.Number), d.Progress,
				semaphoreLabel(d.Semaphore), string(d.Status))

			if statusStories {
				for _, story := range d.Stories {
					fmt.Printf("    - #%d %-50s %3d%%  (%s)\n", story.ID, story.Title, story.Progress, story.State)
				}
			}
		}
	}

	if len(report.Unstaged) > 0 {
		fmt.Printf("\nUnstaged stories: %d\n", len(report.Unstaged))
		for _, story := range report.Unstaged {
			fmt.Printf("  - #%d %s\n", story.ID, story.Title)
		}
	}
	if report.OtherCount > 0 {
		fmt.Printf("\nOther tickets outside the hierarchy: %d\n", report.OtherCount)
	}

	for _, diag := range report.Diagnostics {
		fmt.Printf("\nWARNING: item %d: %s %v\n", diag.ItemID, diag.Message, diag.Tags)
	}

	return nil
}

func deliverableLabel(number int) string {
	if number < 0 {
		return "Deliverable  ?"
	}
	return fmt.Sprintf("Deliverable %2d", number)
}

// semaphoreLabel renders the two signals as compact colored markers.
func semaphoreLabel(s metrics.SemaphoreResult) string {
	return fmt.Sprintf("[delivery: %s] [consumption: %s]", s.Delivery, s.Consumption)
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	statusCmd.Flags().IntVarP(&statusStage, "stage", "e", 0, "Show a single stage by id")
	statusCmd.Flags().BoolVar(&statusStories, "stories", false, "Include story rows under each deliverable")
	RootCmd.AddCommand(statusCmd)
}
