package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/cmd/cli/commands"
	"github.com/jakechorley/party-planner/internal/config"
	"github.com/jakechorley/party-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/party-planner/pkg/postgres"
	"github.com/jakechorley/party-planner/pkg/utils/logging"
)

var (
	env      string
	database *postgres.DB
	stop     context.CancelFunc
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Party Planner CLI - seat meals and split events into teams",
		Long:  `A CLI tool for planning the seating of meals and the teams of events across a multi-day party.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if stop != nil {
				stop()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ViewPartyCmd(app))
	rootCmd.AddCommand(commands.DefineMealCmd(app))
	rootCmd.AddCommand(commands.ScheduleMealsCmd(app))
	rootCmd.AddCommand(commands.DefineEventCmd(app))
	rootCmd.AddCommand(commands.PlaceMealCmd(app))
	rootCmd.AddCommand(commands.PlaceEventCmd(app))
	rootCmd.AddCommand(commands.ViewArrangementCmd(app))
	rootCmd.AddCommand(commands.ClearArrangementCmd(app))
	rootCmd.AddCommand(commands.ViewHistoryCmd(app))
	rootCmd.AddCommand(commands.PublishArrangementCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database and the optional sheets client
func initApp(app *commands.AppContext) error {
	var err error
	app.Ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	app.Input = bufio.NewScanner(os.Stdin)

	app.Logger, err = logging.InitLogger(env, logging.DefaultDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Info("Database initialized successfully")

	if app.Cfg.CredentialsFile != "" {
		app.Logger.Info("Initializing sheets client")
		app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, app.Cfg.CredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		app.Logger.Debug("Sheets client initialized successfully")
	}

	return nil
}
