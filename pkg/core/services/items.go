package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/core/optimizer"
	"github.com/jakechorley/party-planner/pkg/db"
)

// ItemStore defines the database operations needed to define meals and events
type ItemStore interface {
	GetParty(ctx context.Context, partyID string) (*db.Party, error)
	InsertPartyItems(ctx context.Context, items []db.PartyItem) error
}

// TeamConfiguration is the floor/remainder split of a guest list into teams
type TeamConfiguration struct {
	TeamCount   int
	MinSize     int
	MaxSize     int
	Description string
}

// CalculateTeamConfiguration splits totalGuests into teamCount teams whose sizes differ by at most one
func CalculateTeamConfiguration(totalGuests, teamCount int) (*TeamConfiguration, error) {
	if teamCount < 2 {
		return nil, fmt.Errorf("%w: at least 2 teams are needed, got %d", optimizer.ErrInvalidConfiguration, teamCount)
	}
	if totalGuests <= teamCount {
		return nil, fmt.Errorf("%w: %d guests cannot fill %d teams", optimizer.ErrInvalidConfiguration, totalGuests, teamCount)
	}

	minSize, maxSize := optimizer.TeamSizes(totalGuests, teamCount)

	description := fmt.Sprintf("%d teams of %d", teamCount, minSize)
	if minSize != maxSize {
		description = fmt.Sprintf("%d teams of %d/%d", teamCount, minSize, maxSize)
	}

	return &TeamConfiguration{
		TeamCount:   teamCount,
		MinSize:     minSize,
		MaxSize:     maxSize,
		Description: description,
	}, nil
}

// DefineMeal creates a meal in the party
func DefineMeal(ctx context.Context, store ItemStore, logger *zap.Logger, partyID, name string, scheduledAt *time.Time) (*db.PartyItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("meal name must not be empty")
	}

	if _, err := store.GetParty(ctx, partyID); err != nil {
		return nil, fmt.Errorf("failed to fetch party: %w", err)
	}

	item := db.PartyItem{
		ID:          uuid.New().String(),
		PartyID:     partyID,
		Name:        name,
		Type:        model.ItemTypeMeal,
		ScheduledAt: scheduledAt,
	}

	logger.Debug("Creating meal", zap.String("id", item.ID), zap.String("name", item.Name))

	if err := store.InsertPartyItems(ctx, []db.PartyItem{item}); err != nil {
		return nil, fmt.Errorf("failed to insert meal: %w", err)
	}

	return &item, nil
}

// DefineEventParams describes a new team event
type DefineEventParams struct {
	PartyID     string
	Name        string
	GuestCount  int
	TeamCount   int
	FairPlay    bool
	Rankings    []string
	ScheduledAt *time.Time
}

// DefineEvent creates an event in the party, storing its team configuration as JSON
func DefineEvent(ctx context.Context, store ItemStore, logger *zap.Logger, params DefineEventParams) (*db.PartyItem, *TeamConfiguration, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("event name must not be empty")
	}

	teamConfig, err := CalculateTeamConfiguration(params.GuestCount, params.TeamCount)
	if err != nil {
		return nil, nil, err
	}

	if _, err := store.GetParty(ctx, params.PartyID); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch party: %w", err)
	}

	eventConfig := db.EventConfig{
		Teams:       teamConfig.TeamCount,
		MinTeamSize: teamConfig.MinSize,
		MaxTeamSize: teamConfig.MaxSize,
		FairPlay:    params.FairPlay,
	}
	if params.FairPlay {
		eventConfig.GuestRankings = params.Rankings
	}
	description, err := eventConfig.Encode()
	if err != nil {
		return nil, nil, err
	}

	item := db.PartyItem{
		ID:          uuid.New().String(),
		PartyID:     params.PartyID,
		Name:        name,
		Type:        model.ItemTypeEvent,
		Description: description,
		FairPlay:    params.FairPlay,
		ScheduledAt: params.ScheduledAt,
	}

	logger.Debug("Creating event",
		zap.String("id", item.ID),
		zap.String("name", item.Name),
		zap.String("teams", teamConfig.Description),
		zap.Bool("fair_play", params.FairPlay))

	if err := store.InsertPartyItems(ctx, []db.PartyItem{item}); err != nil {
		return nil, nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return &item, teamConfig, nil
}

// ScheduleMeals creates one meal per rrule occurrence between the party's start and end dates.
// Each meal is named after name and its date.
func ScheduleMeals(ctx context.Context, store ItemStore, logger *zap.Logger, partyID, rule, name string) ([]db.PartyItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("meal name must not be empty")
	}

	party, err := store.GetParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party: %w", err)
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule: %w", err)
	}
	opt.Dtstart = party.StartDate
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build rrule: %w", err)
	}

	// The end date is inclusive
	end := party.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
	occurrences := r.Between(party.StartDate, end, true)
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("rrule %q has no occurrences between %s and %s",
			rule, party.StartDate.Format("2006-01-02"), party.EndDate.Format("2006-01-02"))
	}

	logger.Debug("Scheduling meals",
		zap.String("party_id", partyID),
		zap.String("rrule", rule),
		zap.Int("occurrences", len(occurrences)))

	items := make([]db.PartyItem, len(occurrences))
	for i, occurrence := range occurrences {
		scheduledAt := occurrence
		items[i] = db.PartyItem{
			ID:          uuid.New().String(),
			PartyID:     partyID,
			Name:        fmt.Sprintf("%s %s", name, occurrence.Format("Mon 02 Jan")),
			Type:        model.ItemTypeMeal,
			ScheduledAt: &scheduledAt,
		}
	}

	if err := store.InsertPartyItems(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to insert meals: %w", err)
	}

	logger.Info("Meals scheduled", zap.String("party_id", partyID), zap.Int("count", len(items)))
	return items, nil
}
