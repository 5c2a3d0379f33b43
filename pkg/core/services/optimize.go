package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/internal/config"
	"github.com/jakechorley/party-planner/pkg/core/history"
	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/core/optimizer"
	"github.com/jakechorley/party-planner/pkg/db"
)

// OptimizeOptions tunes a single optimize call
type OptimizeOptions struct {
	Search optimizer.SearchParams

	// Weights overrides the default penalty weights when set
	Weights *optimizer.Weights

	// SeatingHistoryIncludesEvents merges prior team events into seating history
	SeatingHistoryIncludesEvents bool
}

// OptionsFromConfig builds optimize options from the application configuration.
// A non-zero seed makes generation reproducible.
func OptionsFromConfig(cfg *config.Config) OptimizeOptions {
	search := cfg.SearchParams()
	seed := cfg.Optimizer.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	search.Rand = rand.New(rand.NewSource(seed))

	weights := cfg.PenaltyWeights()
	return OptimizeOptions{
		Search:                       search,
		Weights:                      &weights,
		SeatingHistoryIncludesEvents: cfg.Optimizer.SeatingHistoryIncludesEvents,
	}
}

// OptimizeSeating returns ranked seatings for people at a meal of partyID.
// History comes from prior meals only unless SeatingHistoryIncludesEvents is set.
func OptimizeSeating(
	ctx context.Context,
	lookup db.HistoryLookup,
	logger *zap.Logger,
	people []model.Person,
	partyID string,
	opts OptimizeOptions,
) ([]model.SeatingOption, error) {
	if err := optimizer.ValidatePeople(len(people)); err != nil {
		return nil, err
	}

	logger.Debug("Optimizing seating",
		zap.String("party_id", partyID),
		zap.Int("people", len(people)),
		zap.Int("max_options", opts.Search.MaxOptions))

	types := []model.ItemType{model.ItemTypeMeal}
	if opts.SeatingHistoryIncludesEvents {
		types = append(types, model.ItemTypeEvent)
	}
	h := history.Aggregate(ctx, lookup, logger, partyID, types...)

	c := optimizer.BuildContext(optimizer.ContextConfig{
		People:  people,
		History: h,
		Weights: opts.Weights,
	})

	options, err := optimizer.GenerateSeating(ctx, c, opts.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to generate seating: %w", err)
	}

	logger.Debug("Seating options generated", zap.Int("options", len(options)))
	return options, nil
}

// OptimizeTeams returns ranked team partitions for people at an event of partyID.
// History comes from prior meals and events.
func OptimizeTeams(
	ctx context.Context,
	lookup db.HistoryLookup,
	logger *zap.Logger,
	people []model.Person,
	partyID string,
	teamConfig model.TeamConfig,
	opts OptimizeOptions,
) ([]model.TeamOption, error) {
	if err := optimizer.ValidateTeamConfig(len(people), teamConfig.TeamCount, teamConfig.MinSize, teamConfig.MaxSize); err != nil {
		return nil, err
	}

	logger.Debug("Optimizing teams",
		zap.String("party_id", partyID),
		zap.Int("people", len(people)),
		zap.Int("teams", teamConfig.TeamCount),
		zap.Bool("fair_play", teamConfig.FairPlay))

	h := history.Aggregate(ctx, lookup, logger, partyID, model.ItemTypeMeal, model.ItemTypeEvent)

	c := optimizer.BuildContext(optimizer.ContextConfig{
		People:       people,
		History:      h,
		FairPlay:     teamConfig.FairPlay,
		RankingOrder: teamConfig.Rankings,
		Weights:      opts.Weights,
	})

	options, err := optimizer.GenerateTeams(ctx, c, teamConfig.TeamCount, opts.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to generate teams: %w", err)
	}

	logger.Debug("Team options generated", zap.Int("options", len(options)))
	return options, nil
}

// excludingItem hides one item's stored outcome so re-planning it is not penalised by itself
type excludingItem struct {
	lookup db.HistoryLookup
	itemID string
}

func (e excludingItem) GetPriorEvents(ctx context.Context, partyID string) ([]model.PriorEvent, error) {
	events, err := e.lookup.GetPriorEvents(ctx, partyID)
	if err != nil {
		return nil, err
	}
	filtered := events[:0:0]
	for _, event := range events {
		if event.ItemID != e.itemID {
			filtered = append(filtered, event)
		}
	}
	return filtered, nil
}
