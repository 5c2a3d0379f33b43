package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/core/optimizer"
	"github.com/jakechorley/party-planner/pkg/db"
)

func storeWithParty() *mockStore {
	store := newMockStore()
	store.parties["party-1"] = &db.Party{
		ID:        "party-1",
		Name:      "Lakeside Weekend",
		StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
	}
	return store
}

func TestCalculateTeamConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		teams       int
		min, max    int
		description string
	}{
		{"even split", 6, 2, 3, 3, "2 teams of 3"},
		{"uneven split", 10, 3, 3, 4, "3 teams of 3/4"},
		{"pairs", 9, 4, 2, 3, "4 teams of 2/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := CalculateTeamConfiguration(tt.total, tt.teams)
			require.NoError(t, err)
			assert.Equal(t, tt.teams, config.TeamCount)
			assert.Equal(t, tt.min, config.MinSize)
			assert.Equal(t, tt.max, config.MaxSize)
			assert.Equal(t, tt.description, config.Description)
		})
	}
}

func TestCalculateTeamConfiguration_Invalid(t *testing.T) {
	_, err := CalculateTeamConfiguration(10, 1)
	assert.ErrorIs(t, err, optimizer.ErrInvalidConfiguration)

	_, err = CalculateTeamConfiguration(3, 3)
	assert.ErrorIs(t, err, optimizer.ErrInvalidConfiguration)
}

func TestDefineMeal(t *testing.T) {
	store := storeWithParty()
	at := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)

	item, err := DefineMeal(context.Background(), store, zap.NewNop(), "party-1", "  Welcome dinner ", &at)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Welcome dinner", item.Name)
	assert.Equal(t, model.ItemTypeMeal, item.Type)
	assert.Equal(t, &at, item.ScheduledAt)
	require.Len(t, store.insertedItems, 1)
	assert.Equal(t, item.ID, store.insertedItems[0].ID)
}

func TestDefineMeal_Errors(t *testing.T) {
	store := storeWithParty()

	_, err := DefineMeal(context.Background(), store, zap.NewNop(), "party-1", "   ", nil)
	assert.Error(t, err)

	_, err = DefineMeal(context.Background(), store, zap.NewNop(), "missing", "Lunch", nil)
	assert.ErrorContains(t, err, "failed to fetch party")

	store.insertErr = errUnavailable
	_, err = DefineMeal(context.Background(), store, zap.NewNop(), "party-1", "Lunch", nil)
	assert.ErrorIs(t, err, errUnavailable)
	assert.Empty(t, store.insertedItems)
}

func TestDefineEvent_StoresTeamConfiguration(t *testing.T) {
	store := storeWithParty()

	item, configuration, err := DefineEvent(context.Background(), store, zap.NewNop(), DefineEventParams{
		PartyID:    "party-1",
		Name:       "Pub quiz",
		GuestCount: 10,
		TeamCount:  3,
		FairPlay:   true,
		Rankings:   []string{"b", "a"},
	})
	require.NoError(t, err)

	assert.Equal(t, model.ItemTypeEvent, item.Type)
	assert.True(t, item.FairPlay)
	assert.Equal(t, "3 teams of 3/4", configuration.Description)

	stored, err := db.ParseEventConfig(item.Description)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Teams)
	assert.Equal(t, 3, stored.MinTeamSize)
	assert.Equal(t, 4, stored.MaxTeamSize)
	assert.True(t, stored.FairPlay)
	assert.Equal(t, []string{"b", "a"}, stored.GuestRankings)
}

func TestDefineEvent_RankingsIgnoredWithoutFairPlay(t *testing.T) {
	store := storeWithParty()

	item, _, err := DefineEvent(context.Background(), store, zap.NewNop(), DefineEventParams{
		PartyID:    "party-1",
		Name:       "Treasure hunt",
		GuestCount: 6,
		TeamCount:  2,
		Rankings:   []string{"a"},
	})
	require.NoError(t, err)

	stored, err := db.ParseEventConfig(item.Description)
	require.NoError(t, err)
	assert.False(t, stored.FairPlay)
	assert.Empty(t, stored.GuestRankings)
}

func TestDefineEvent_InvalidTeams(t *testing.T) {
	store := storeWithParty()

	_, _, err := DefineEvent(context.Background(), store, zap.NewNop(), DefineEventParams{
		PartyID:    "party-1",
		Name:       "Tug of war",
		GuestCount: 4,
		TeamCount:  5,
	})
	assert.ErrorIs(t, err, optimizer.ErrInvalidConfiguration)
	assert.Empty(t, store.insertedItems)
}

func TestScheduleMeals_CreatesOneMealPerDay(t *testing.T) {
	store := storeWithParty()

	items, err := ScheduleMeals(context.Background(), store, zap.NewNop(), "party-1",
		"FREQ=DAILY;BYHOUR=19;BYMINUTE=0;BYSECOND=0", "Dinner")
	require.NoError(t, err)
	require.Len(t, items, 3)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
		assert.Equal(t, model.ItemTypeMeal, item.Type)
		require.NotNil(t, item.ScheduledAt)
		assert.Equal(t, 19, item.ScheduledAt.Hour())
	}
	assert.Equal(t, []string{"Dinner Fri 10 Jan", "Dinner Sat 11 Jan", "Dinner Sun 12 Jan"}, names)
	assert.Len(t, store.insertedItems, 3)
}

func TestScheduleMeals_Errors(t *testing.T) {
	store := storeWithParty()

	_, err := ScheduleMeals(context.Background(), store, zap.NewNop(), "party-1", "FREQ=SOMETIMES", "Dinner")
	assert.ErrorContains(t, err, "failed to parse rrule")

	// The party runs Friday to Sunday
	_, err = ScheduleMeals(context.Background(), store, zap.NewNop(), "party-1", "FREQ=WEEKLY;BYDAY=MO", "Dinner")
	assert.ErrorContains(t, err, "no occurrences")

	_, err = ScheduleMeals(context.Background(), store, zap.NewNop(), "missing", "FREQ=DAILY", "Dinner")
	assert.ErrorContains(t, err, "failed to fetch party")

	assert.Empty(t, store.insertedItems)
}
