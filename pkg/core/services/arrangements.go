package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// ArrangementReader defines the database operations needed to read a stored arrangement
type ArrangementReader interface {
	GetPartyItem(ctx context.Context, itemID string) (*db.PartyItem, error)
	GetSeating(ctx context.Context, itemID string) ([]db.SeatingArrangement, error)
	GetTeams(ctx context.Context, itemID string) ([]db.TeamAssignment, error)
}

// ArrangementClearer defines the database operations needed to clear a stored arrangement
type ArrangementClearer interface {
	GetPartyItem(ctx context.Context, itemID string) (*db.PartyItem, error)
	DeleteSeatingFor(ctx context.Context, itemID string) error
	DeleteTeamsFor(ctx context.Context, itemID string) error
}

// StoredArrangement is the saved seating of a meal or the saved teams of an event
type StoredArrangement struct {
	Item *db.PartyItem
	// Seats ordered by position (meals)
	Seats []db.SeatingArrangement
	// Teams ordered by team number, members in stored order (events)
	Teams []StoredTeam
}

// StoredTeam groups the stored assignments of one team number
type StoredTeam struct {
	Number  int
	Members []db.TeamAssignment
}

// Empty reports whether nothing is stored for the item
func (a *StoredArrangement) Empty() bool {
	return len(a.Seats) == 0 && len(a.Teams) == 0
}

// ViewArrangement loads the stored arrangement of a meal or event
func ViewArrangement(ctx context.Context, store ArrangementReader, logger *zap.Logger, itemID string) (*StoredArrangement, error) {
	item, err := store.GetPartyItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party item: %w", err)
	}

	result := &StoredArrangement{Item: item}

	switch item.Type {
	case model.ItemTypeMeal:
		seats, err := store.GetSeating(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch seating: %w", err)
		}
		sort.SliceStable(seats, func(i, j int) bool {
			return seats[i].Position < seats[j].Position
		})
		result.Seats = seats

	case model.ItemTypeEvent:
		assignments, err := store.GetTeams(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch teams: %w", err)
		}
		result.Teams = groupTeams(assignments)

	default:
		return nil, fmt.Errorf("unknown party item type %q", item.Type)
	}

	logger.Debug("Loaded stored arrangement",
		zap.String("item_id", itemID),
		zap.Int("seats", len(result.Seats)),
		zap.Int("teams", len(result.Teams)))

	return result, nil
}

// ClearArrangement deletes the stored seating or teams of an item
func ClearArrangement(ctx context.Context, store ArrangementClearer, logger *zap.Logger, itemID string) (*db.PartyItem, error) {
	item, err := store.GetPartyItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party item: %w", err)
	}

	switch item.Type {
	case model.ItemTypeMeal:
		err = store.DeleteSeatingFor(ctx, itemID)
	case model.ItemTypeEvent:
		err = store.DeleteTeamsFor(ctx, itemID)
	default:
		return nil, fmt.Errorf("unknown party item type %q", item.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clear arrangement: %w", err)
	}

	logger.Info("Arrangement cleared", zap.String("item", item.Name), zap.String("type", string(item.Type)))
	return item, nil
}

func groupTeams(assignments []db.TeamAssignment) []StoredTeam {
	byNumber := make(map[int][]db.TeamAssignment)
	for _, a := range assignments {
		byNumber[a.TeamNumber] = append(byNumber[a.TeamNumber], a)
	}

	teams := make([]StoredTeam, 0, len(byNumber))
	for number, members := range byNumber {
		teams = append(teams, StoredTeam{Number: number, Members: members})
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Number < teams[j].Number
	})
	return teams
}
