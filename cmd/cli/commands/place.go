package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/services"
	"github.com/jakechorley/party-planner/pkg/core/session"
)

// PlaceMealCmd creates the placeMeal command
func PlaceMealCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "placeMeal <meal_id> [guest_id...]",
		Short: "Generate seating options for a meal (all party guests by default)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commit, _ := cmd.Flags().GetInt("commit")
			interactive, _ := cmd.Flags().GetBool("interactive")
			if err := checkPlacementFlags(commit, interactive); err != nil {
				return err
			}

			app.Logger.Debug("placeMeal command",
				zap.String("meal_id", args[0]),
				zap.Int("guests", len(args)-1))

			plan, err := services.PlanSeating(app.Ctx, app.Database, app.Logger, services.OptionsFromConfig(app.Cfg), args[0], args[1:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderSeatingPlan(out, plan)

			if commit > 0 {
				if err := services.CommitSeatingOption(app.Ctx, app.Database, app.Logger, plan, commit-1); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Option %d saved for %s\n\n", commit, plan.Item.Name)
			}

			if interactive {
				s, err := session.NewSeatingSession(plan.Options, app.Logger)
				if err != nil {
					return err
				}
				commands, show := seatingShellCommands(app.Ctx, s, app.Database, plan.Item.ID, out)
				return runPlacementShell(app.Input, out, commands, show)
			}

			return nil
		},
	}

	addPlacementFlags(cmd)
	return cmd
}

// PlaceEventCmd creates the placeEvent command
func PlaceEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "placeEvent <event_id> [guest_id...]",
		Short: "Generate team options for an event (all party guests by default)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commit, _ := cmd.Flags().GetInt("commit")
			interactive, _ := cmd.Flags().GetBool("interactive")
			if err := checkPlacementFlags(commit, interactive); err != nil {
				return err
			}

			app.Logger.Debug("placeEvent command",
				zap.String("event_id", args[0]),
				zap.Int("guests", len(args)-1))

			plan, err := services.PlanTeams(app.Ctx, app.Database, app.Logger, services.OptionsFromConfig(app.Cfg), args[0], args[1:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderTeamPlan(out, plan)

			if commit > 0 {
				if err := services.CommitTeamOption(app.Ctx, app.Database, app.Logger, plan, commit-1); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Option %d saved for %s\n\n", commit, plan.Item.Name)
			}

			if interactive {
				s, err := session.NewTeamSession(plan.Options, app.Logger)
				if err != nil {
					return err
				}
				commands, show := teamShellCommands(app.Ctx, s, app.Database, plan.Item.ID, out)
				return runPlacementShell(app.Input, out, commands, show)
			}

			return nil
		},
	}

	addPlacementFlags(cmd)
	return cmd
}

func addPlacementFlags(cmd *cobra.Command) {
	cmd.Flags().Int("commit", 0, "Save option n (1-based) without editing")
	cmd.Flags().Bool("interactive", false, "Open a placement session to edit and save an option")
}

func checkPlacementFlags(commit int, interactive bool) error {
	if commit < 0 {
		return fmt.Errorf("--commit must be a positive option number, got %d", commit)
	}
	if commit > 0 && interactive {
		return fmt.Errorf("use either --commit or --interactive, not both")
	}
	return nil
}
