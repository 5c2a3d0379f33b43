package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/db"
)

// PartyOverviewStore defines the database operations needed to summarise a party
type PartyOverviewStore interface {
	GetParty(ctx context.Context, partyID string) (*db.Party, error)
	GetPartyItems(ctx context.Context, partyID string) ([]db.PartyItem, error)
	GetGuests(ctx context.Context, partyID string) ([]db.Guest, error)
}

// PartyOverview is a party with its meals, events and guest list
type PartyOverview struct {
	Party  *db.Party
	Items  []db.PartyItem
	Guests []db.Guest
}

// ViewParty loads a party with its items and guests
func ViewParty(ctx context.Context, store PartyOverviewStore, logger *zap.Logger, partyID string) (*PartyOverview, error) {
	party, err := store.GetParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party: %w", err)
	}

	items, err := store.GetPartyItems(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party items: %w", err)
	}

	guests, err := store.GetGuests(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party guests: %w", err)
	}

	logger.Debug("Party loaded",
		zap.String("party", party.Name),
		zap.Int("items", len(items)),
		zap.Int("guests", len(guests)))

	return &PartyOverview{Party: party, Items: items, Guests: guests}, nil
}
