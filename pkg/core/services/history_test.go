package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

func TestViewHistory(t *testing.T) {
	store := newMockStore()
	store.addGuest("party-1", model.Person{ID: "1", Name: "Cara"})
	store.addGuest("party-1", model.Person{ID: "2", Name: "Ade"})
	store.addGuest("party-1", model.Person{ID: "3", Name: "Bo"})
	store.priorByID["party-1"] = []model.PriorEvent{
		{ItemID: "lunch", Type: model.ItemTypeMeal, Seats: []string{"1", "2"}},
		{ItemID: "quiz", Type: model.ItemTypeEvent, Teams: map[int][]string{1: {"2", "3"}, 2: {"x"}}},
	}

	entries, err := ViewHistory(context.Background(), store, zap.NewNop(), "party-1")
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, HistoryEntry{GuestID: "2", Name: "Ade", GroupedWith: []string{"Bo", "Cara"}}, entries[0])
	assert.Equal(t, HistoryEntry{GuestID: "3", Name: "Bo", GroupedWith: []string{"Ade"}}, entries[1])
	assert.Equal(t, HistoryEntry{GuestID: "1", Name: "Cara", GroupedWith: []string{"Ade"}}, entries[2])
}

func TestViewHistory_NoPriorEvents(t *testing.T) {
	store := newMockStore()
	store.addGuest("party-1", model.Person{ID: "1", Name: "Cara"})

	entries, err := ViewHistory(context.Background(), store, zap.NewNop(), "party-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestViewHistory_UnknownGuestShownByID(t *testing.T) {
	store := newMockStore()
	store.addGuest("party-1", model.Person{ID: "1", Name: "Cara"})
	store.priorByID["party-1"] = []model.PriorEvent{
		{ItemID: "lunch", Type: model.ItemTypeMeal, Seats: []string{"1", "gone"}},
	}

	entries, err := ViewHistory(context.Background(), store, zap.NewNop(), "party-1")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Cara", entries[0].Name)
	assert.Equal(t, []string{"gone"}, entries[0].GroupedWith)
	assert.Equal(t, "gone", entries[1].Name)
}
