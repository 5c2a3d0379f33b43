package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/internal/config"
	"github.com/jakechorley/party-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/party-planner/pkg/db"
)

// PublishStore defines the database operations needed to publish an arrangement
type PublishStore interface {
	ArrangementReader
	GetParty(ctx context.Context, partyID string) (*db.Party, error)
}

// ArrangementPublisher defines the sheets client operations needed to publish an arrangement
type ArrangementPublisher interface {
	PublishArrangement(spreadsheetID string, arrangement *sheetsclient.PublishedArrangement) error
}

// PublishArrangement writes the stored arrangement of an item to the configured spreadsheet
func PublishArrangement(
	ctx context.Context,
	store PublishStore,
	publisher ArrangementPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	itemID string,
) (*sheetsclient.PublishedArrangement, error) {
	if cfg.PublishSheetID == "" {
		return nil, fmt.Errorf("publishSheetID is not configured")
	}

	stored, err := ViewArrangement(ctx, store, logger, itemID)
	if err != nil {
		return nil, err
	}
	if stored.Empty() {
		return nil, fmt.Errorf("%s has no saved arrangement to publish", stored.Item.Name)
	}

	party, err := store.GetParty(ctx, stored.Item.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party: %w", err)
	}

	published := &sheetsclient.PublishedArrangement{
		PartyName: party.Name,
		ItemName:  stored.Item.Name,
	}
	for _, seat := range stored.Seats {
		published.Seats = append(published.Seats, sheetsclient.PublishedSeat{
			Position:  seat.Position,
			Guest:     seat.GuestName,
			Generated: seat.IsGenerated,
		})
	}
	for _, team := range stored.Teams {
		members := make([]string, len(team.Members))
		for i, member := range team.Members {
			members[i] = member.GuestName
		}
		published.Teams = append(published.Teams, sheetsclient.PublishedTeam{
			Name:    fmt.Sprintf("Team %d", team.Number),
			Members: members,
		})
	}

	logger.Debug("Publishing arrangement",
		zap.String("tab", published.TabTitle()),
		zap.Int("seats", len(published.Seats)),
		zap.Int("teams", len(published.Teams)))

	if err := publisher.PublishArrangement(cfg.PublishSheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish arrangement: %w", err)
	}

	logger.Info("Arrangement published", zap.String("tab", published.TabTitle()))
	return published, nil
}
