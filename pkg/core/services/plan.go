package services

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/core/optimizer"
	"github.com/jakechorley/party-planner/pkg/core/session"
	"github.com/jakechorley/party-planner/pkg/db"
)

// PlanStore defines the database operations needed to plan a meal or event
type PlanStore interface {
	db.PeopleLookup
	db.HistoryLookup
	GetPartyItem(ctx context.Context, itemID string) (*db.PartyItem, error)
	GetGuests(ctx context.Context, partyID string) ([]db.Guest, error)
}

// SeatingPlan is the result of optimizing the seating of a meal
type SeatingPlan struct {
	Item             *db.PartyItem
	People           []model.Person
	ArrangementCount *big.Int // distinct circular tables
	Options          []model.SeatingOption
}

// TeamPlan is the result of optimizing the teams of an event
type TeamPlan struct {
	Item          *db.PartyItem
	People        []model.Person
	Configuration *TeamConfiguration
	Options       []model.TeamOption
}

// PlanSeating loads the meal and its guests, then produces ranked seatings.
// With no guestIDs every guest of the party is seated.
func PlanSeating(ctx context.Context, store PlanStore, logger *zap.Logger, opts OptimizeOptions, itemID string, guestIDs []string) (*SeatingPlan, error) {
	item, err := getItemOfType(ctx, store, itemID, model.ItemTypeMeal)
	if err != nil {
		return nil, err
	}

	people, err := loadPeople(ctx, store, logger, item.PartyID, guestIDs)
	if err != nil {
		return nil, err
	}

	count := optimizer.CircularArrangementCount(len(people))
	logger.Info("Optimizing seating",
		zap.String("meal", item.Name),
		zap.Int("guests", len(people)),
		zap.String("possible_arrangements", count.String()))

	options, err := OptimizeSeating(ctx, excludingItem{lookup: store, itemID: item.ID}, logger, people, item.PartyID, opts)
	if err != nil {
		return nil, err
	}

	return &SeatingPlan{
		Item:             item,
		People:           people,
		ArrangementCount: count,
		Options:          options,
	}, nil
}

// PlanTeams loads the event, its stored team configuration and its guests, then produces
// ranked team partitions. With no guestIDs every guest of the party takes part.
func PlanTeams(ctx context.Context, store PlanStore, logger *zap.Logger, opts OptimizeOptions, itemID string, guestIDs []string) (*TeamPlan, error) {
	item, err := getItemOfType(ctx, store, itemID, model.ItemTypeEvent)
	if err != nil {
		return nil, err
	}

	eventConfig, err := db.ParseEventConfig(item.Description)
	if err != nil {
		return nil, err
	}

	people, err := loadPeople(ctx, store, logger, item.PartyID, guestIDs)
	if err != nil {
		return nil, err
	}

	configuration, err := CalculateTeamConfiguration(len(people), eventConfig.Teams)
	if err != nil {
		return nil, err
	}

	teamConfig := eventConfig.TeamConfig()
	teamConfig.Rankings = rankingsFor(people, eventConfig.GuestRankings)
	if teamConfig.MinSize != configuration.MinSize || teamConfig.MaxSize != configuration.MaxSize {
		logger.Warn("Guest list changed since the event was defined, resizing teams",
			zap.Int("stored_min", teamConfig.MinSize),
			zap.Int("stored_max", teamConfig.MaxSize),
			zap.String("configuration", configuration.Description))
		teamConfig.MinSize, teamConfig.MaxSize = configuration.MinSize, configuration.MaxSize
	}

	logger.Info("Optimizing teams",
		zap.String("event", item.Name),
		zap.Int("guests", len(people)),
		zap.String("configuration", configuration.Description),
		zap.Bool("fair_play", teamConfig.FairPlay))

	options, err := OptimizeTeams(ctx, excludingItem{lookup: store, itemID: item.ID}, logger, people, item.PartyID, teamConfig, opts)
	if err != nil {
		return nil, err
	}

	return &TeamPlan{
		Item:          item,
		People:        people,
		Configuration: configuration,
		Options:       options,
	}, nil
}

// CommitSeatingOption stores option index (0-based) of a plan as the meal's seating
func CommitSeatingOption(ctx context.Context, store db.SeatingStore, logger *zap.Logger, plan *SeatingPlan, index int) error {
	s, err := session.NewSeatingSession(plan.Options, logger)
	if err != nil {
		return err
	}
	if err := s.SelectOption(index); err != nil {
		return err
	}
	if err := s.Commit(ctx, store, plan.Item.ID); err != nil {
		return fmt.Errorf("failed to commit seating: %w", err)
	}

	logger.Info("Seating saved", zap.String("meal", plan.Item.Name), zap.Int("option", index+1))
	return nil
}

// CommitTeamOption stores option index (0-based) of a plan as the event's teams
func CommitTeamOption(ctx context.Context, store db.TeamStore, logger *zap.Logger, plan *TeamPlan, index int) error {
	s, err := session.NewTeamSession(plan.Options, logger)
	if err != nil {
		return err
	}
	if err := s.SelectOption(index); err != nil {
		return err
	}
	if err := s.Commit(ctx, store, plan.Item.ID); err != nil {
		return fmt.Errorf("failed to commit teams: %w", err)
	}

	logger.Info("Teams saved", zap.String("event", plan.Item.Name), zap.Int("option", index+1))
	return nil
}

func getItemOfType(ctx context.Context, store PlanStore, itemID string, itemType model.ItemType) (*db.PartyItem, error) {
	item, err := store.GetPartyItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party item: %w", err)
	}
	if item.Type != itemType {
		return nil, fmt.Errorf("%s is a %s, expected %s", item.Name, item.Type, itemType)
	}
	return item, nil
}

// loadPeople fetches the selected guests, or all party guests when none are selected
func loadPeople(ctx context.Context, store PlanStore, logger *zap.Logger, partyID string, guestIDs []string) ([]model.Person, error) {
	if len(guestIDs) == 0 {
		guests, err := store.GetGuests(ctx, partyID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch party guests: %w", err)
		}
		for _, guest := range guests {
			guestIDs = append(guestIDs, guest.ID)
		}
	}

	if err := optimizer.ValidatePeople(len(guestIDs)); err != nil {
		return nil, err
	}

	people, err := store.GetPeople(ctx, guestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guests: %w", err)
	}

	if len(people) != len(guestIDs) {
		found := make(map[string]bool, len(people))
		for _, p := range people {
			found[p.ID] = true
		}
		for _, id := range guestIDs {
			if !found[id] {
				logger.Warn("Guest not found, leaving them out", zap.String("guest_id", id))
			}
		}
	}
	if err := optimizer.ValidatePeople(len(people)); err != nil {
		return nil, err
	}

	return people, nil
}

// rankingsFor keeps the ranking order of the people taking part
func rankingsFor(people []model.Person, rankings []string) []string {
	present := make(map[string]bool, len(people))
	for _, p := range people {
		present[p.ID] = true
	}

	var filtered []string
	for _, id := range rankings {
		if present[id] {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
