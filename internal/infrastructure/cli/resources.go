package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rmarchan/tablero/pkg/application"
	"github.com/spf13/cobra"
)

var resourcesJSON bool

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Compare role budgets against estimated hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		report, err := application.NewResourceService(repo).BuildReport()
		if err != nil {
			return err
		}

		if resourcesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		for _, role := range report.Roles {
			fmt.Printf("%s: %.0f of %.0f hours estimated (%.0f remaining)\n",
				role.Role, role.EstimatedHours, role.BudgetHours, role.RemainingHours)
			for _, m := range role.Members {
				fmt.Printf("  %-30s %.0f est  %.0f weighted  (factor %.2f)\n",
					m.Name, m.EstimatedHours, m.WeightedHours, m.Factor)
			}
		}

		if len(report.Unassigned) > 0 {
			fmt.Println("\nNot on the roster:")
			for _, m := range report.Unassigned {
				name := m.Name
				if name == "" {
					name = "(unassigned)"
				}
				fmt.Printf("  %-30s %.0f est\n", name, m.EstimatedHours)
			}
		}
		return nil
	},
}

func init() {
	resourcesCmd.Flags().BoolVar(&resourcesJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(resourcesCmd)
}
