package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/party-planner/pkg/core/services"
)

// ViewArrangementCmd creates the viewArrangement command
func ViewArrangementCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewArrangement <item_id>",
		Short: "Show the saved seating of a meal or teams of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := services.ViewArrangement(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}
			renderStoredArrangement(cmd.OutOrStdout(), stored)
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// ClearArrangementCmd creates the clearArrangement command
func ClearArrangementCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clearArrangement <item_id>",
		Short: "Delete the saved seating or teams of a meal or event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := services.ClearArrangement(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Arrangement cleared for %s\n\n", item.Name)
			return nil
		},
	}
}

// ViewHistoryCmd creates the viewHistory command
func ViewHistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewHistory <party_id>",
		Short: "Show who each guest has sat next to or shared a team with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := services.ViewHistory(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}
			renderHistory(cmd.OutOrStdout(), entries)
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// PublishArrangementCmd creates the publishArrangement command
func PublishArrangementCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishArrangement <item_id>",
		Short: "Write the saved arrangement of a meal or event to the publish spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.SheetsClient == nil {
				return fmt.Errorf("credentialsFile is not configured")
			}

			published, err := services.PublishArrangement(app.Ctx, app.Database, app.SheetsClient, app.Cfg, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Published to tab %q\n\n", published.TabTitle())
			return nil
		},
	}
}
