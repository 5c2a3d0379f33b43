package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/services"
)

const scheduledAtLayout = "2006-01-02 15:04"

// DefineMealCmd creates the defineMeal command
func DefineMealCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defineMeal <party_id> <name>",
		Short: "Add a meal to a party",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("at")
			scheduledAt, err := parseScheduledAt(at)
			if err != nil {
				return err
			}

			item, err := services.DefineMeal(app.Ctx, app.Database, app.Logger, args[0], args[1], scheduledAt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Meal created: %s (%s)\n\n", item.Name, item.ID)
			return nil
		},
	}

	cmd.Flags().String("at", "", "When the meal is served ("+scheduledAtLayout+")")
	return cmd
}

// ScheduleMealsCmd creates the scheduleMeals command
func ScheduleMealsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduleMeals <party_id>",
		Short: "Create a recurring series of meals across the party dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, _ := cmd.Flags().GetString("rrule")
			name, _ := cmd.Flags().GetString("name")
			if rule == "" {
				rule = app.Cfg.MealSchedule.RRule
			}
			if name == "" {
				name = app.Cfg.MealSchedule.Name
			}
			if rule == "" || name == "" {
				return fmt.Errorf("--rrule and --name are required when mealSchedule is not configured")
			}

			app.Logger.Debug("scheduleMeals command", zap.String("rrule", rule), zap.String("name", name))

			items, err := services.ScheduleMeals(app.Ctx, app.Database, app.Logger, args[0], rule, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ %d meals created:\n", len(items))
			for _, item := range items {
				fmt.Fprintf(out, "  - %s (%s)\n", item.Name, item.ID)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().String("rrule", "", "Recurrence rule, e.g. FREQ=DAILY;BYHOUR=19;BYMINUTE=0")
	cmd.Flags().String("name", "", "Meal name; each meal gets its date appended")
	return cmd
}

// DefineEventCmd creates the defineEvent command
func DefineEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defineEvent <party_id> <name> <team_count>",
		Short: "Add a team event to a party",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamCount, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("team_count must be a number: %w", err)
			}

			guestCount, _ := cmd.Flags().GetInt("guests")
			fairPlay, _ := cmd.Flags().GetBool("fair-play")
			rankings, _ := cmd.Flags().GetStringSlice("rankings")
			at, _ := cmd.Flags().GetString("at")

			scheduledAt, err := parseScheduledAt(at)
			if err != nil {
				return err
			}

			if guestCount == 0 {
				guests, err := app.Database.GetGuests(app.Ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to count party guests: %w", err)
				}
				guestCount = len(guests)
			}

			item, configuration, err := services.DefineEvent(app.Ctx, app.Database, app.Logger, services.DefineEventParams{
				PartyID:     args[0],
				Name:        args[1],
				GuestCount:  guestCount,
				TeamCount:   teamCount,
				FairPlay:    fairPlay,
				Rankings:    rankings,
				ScheduledAt: scheduledAt,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Event created: %s (%s)\n  %s\n\n", item.Name, item.ID, configuration.Description)
			return nil
		},
	}

	cmd.Flags().Int("guests", 0, "Expected number of guests (defaults to the party guest list)")
	cmd.Flags().Bool("fair-play", false, "Balance teams by the guest rankings")
	cmd.Flags().StringSlice("rankings", nil, "Guest ids ordered best first, used with --fair-play")
	cmd.Flags().String("at", "", "When the event starts ("+scheduledAtLayout+")")
	return cmd
}

// ViewPartyCmd creates the viewParty command
func ViewPartyCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewParty <party_id>",
		Short: "Show a party's guests, meals and events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := services.ViewParty(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}
			renderParty(cmd.OutOrStdout(), overview)
			return nil
		},
	}
}

// parseScheduledAt reads an optional local date and time
func parseScheduledAt(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(scheduledAtLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q, expected %s: %w", value, scheduledAtLayout, err)
	}
	return &t, nil
}
