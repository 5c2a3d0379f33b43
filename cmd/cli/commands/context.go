package commands

import (
	"bufio"
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/internal/config"
	"github.com/jakechorley/party-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/party-planner/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg *config.Config
	// SheetsClient is nil when no credentials file is configured
	SheetsClient *sheetsclient.Client
	Database     db.Database
	Logger       *zap.Logger
	Ctx          context.Context
	// Input is shared by the interactive session and placement shells
	Input *bufio.Scanner
}
