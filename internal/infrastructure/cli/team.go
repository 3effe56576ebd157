package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rmarchan/tablero/pkg/application"
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage weighting factors and the role roster",
}

var teamWeightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Show the per-assignee weighting factors",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		weights, err := application.NewTeamService(repo).Weightings()
		if err != nil {
			return err
		}

		if len(weights.Factors) == 0 {
			fmt.Println("No weighting overrides configured; everyone weighs 1.")
			return nil
		}

		names := make([]string, 0, len(weights.Factors))
		for name := range weights.Factors {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("%-30s %.2f\n", name, weights.Factors[name])
		}
		return nil
	},
}

var teamWeightSetCmd = &cobra.Command{
	Use:   "set <name> <factor>",
	Short: "Set the weighting factor for an assignee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		factor, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid factor %q: %w", args[1], err)
		}

		if err := application.NewTeamService(repo).SetWeighting(args[0], factor); err != nil {
			return err
		}
		fmt.Printf("Weighting for %s set to %.2f\n", args[0], factor)
		return nil
	},
}

var teamWeightRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an assignee's weighting override",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		if err := application.NewTeamService(repo).RemoveWeighting(args[0]); err != nil {
			return err
		}
		fmt.Printf("Weighting for %s removed; they weigh 1 again.\n", args[0])
		return nil
	},
}

var teamRosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show the role roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		profiles, err := application.NewTeamService(repo).Profiles()
		if err != nil {
			return err
		}

		if len(profiles.Profiles) == 0 {
			fmt.Println("No roles configured. Use 'tablero team roster add <role> <name>'.")
			return nil
		}

		for _, p := range profiles.Profiles {
			fmt.Printf("%s (budget: %.0f hours)\n", p.Role, p.BudgetHours)
			for _, name := range p.Assigned {
				fmt.Printf("  - %s\n", name)
			}
		}
		return nil
	},
}

var teamRosterAddCmd = &cobra.Command{
	Use:   "add <role> <name>",
	Short: "Assign a person to a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		if err := application.NewTeamService(repo).AddMember(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s assigned to %s\n", args[1], args[0])
		return nil
	},
}

var teamRosterRemoveCmd = &cobra.Command{
	Use:   "remove <role> <name>",
	Short: "Remove a person from a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		if err := application.NewTeamService(repo).RemoveMember(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s removed from %s\n", args[1], args[0])
		return nil
	},
}

var teamBudgetCmd = &cobra.Command{
	Use:   "budget <role> <hours>",
	Short: "Set the hour budget for a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		hours, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q: %w", args[1], err)
		}

		if err := application.NewTeamService(repo).SetBudget(args[0], hours); err != nil {
			return err
		}
		fmt.Printf("Budget for %s set to %.0f hours\n", args[0], hours)
		return nil
	},
}

func init() {
	teamWeightCmd.AddCommand(teamWeightSetCmd)
	teamWeightCmd.AddCommand(teamWeightRemoveCmd)
	teamRosterCmd.AddCommand(teamRosterAddCmd)
	teamRosterCmd.AddCommand(teamRosterRemoveCmd)
	teamCmd.AddCommand(teamWeightCmd)
	teamCmd.AddCommand(teamRosterCmd)
	teamCmd.AddCommand(teamBudgetCmd)
	RootCmd.AddCommand(teamCmd)
}
