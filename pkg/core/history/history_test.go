package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

type mockLookup struct {
	events []model.PriorEvent
	err    error
}

func (m *mockLookup) GetPriorEvents(ctx context.Context, partyID string) ([]model.PriorEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func TestAddMeal_RecordsBothNeighbours(t *testing.T) {
	h := New()
	h.AddMeal([]string{"a", "b", "c", "d"})

	assert.True(t, h.GroupedBefore("a", "b"))
	assert.True(t, h.GroupedBefore("a", "d"), "table wraps around")
	assert.True(t, h.GroupedBefore("b", "a"))
	assert.False(t, h.GroupedBefore("a", "c"))
	assert.Equal(t, []string{"b", "d"}, h.GroupedWith("a"))
}

func TestAddMeal_TwoSeats(t *testing.T) {
	h := New()
	h.AddMeal([]string{"a", "b"})

	assert.True(t, h.GroupedBefore("a", "b"))
	assert.Equal(t, []string{"b"}, h.GroupedWith("a"))
}

func TestAddEvent_RecordsTeamMates(t *testing.T) {
	h := New()
	h.AddEvent(map[int][]string{
		1: {"a", "b", "c"},
		2: {"d", "e"},
	})

	assert.True(t, h.GroupedBefore("a", "c"))
	assert.True(t, h.GroupedBefore("e", "d"))
	assert.False(t, h.GroupedBefore("a", "d"))
	assert.False(t, h.GroupedBefore("a", "a"))
}

func TestGroupedBefore_NilHistory(t *testing.T) {
	var h *History
	assert.False(t, h.GroupedBefore("a", "b"))
	assert.Equal(t, 0, h.Len())
}

func TestAggregate_MergesMealsAndEvents(t *testing.T) {
	lookup := &mockLookup{events: []model.PriorEvent{
		{ItemID: "meal-1", Type: model.ItemTypeMeal, Seats: []string{"a", "b", "c"}},
		{ItemID: "event-1", Type: model.ItemTypeEvent, Teams: map[int][]string{1: {"a", "d"}, 2: {"b", "c"}}},
	}}

	h := Aggregate(context.Background(), lookup, zap.NewNop(), "party-1")

	assert.True(t, h.GroupedBefore("a", "b"))
	assert.True(t, h.GroupedBefore("a", "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, h.People())
}

func TestAggregate_FiltersByType(t *testing.T) {
	lookup := &mockLookup{events: []model.PriorEvent{
		{ItemID: "meal-1", Type: model.ItemTypeMeal, Seats: []string{"a", "b", "c"}},
		{ItemID: "event-1", Type: model.ItemTypeEvent, Teams: map[int][]string{1: {"a", "d"}}},
	}}

	h := Aggregate(context.Background(), lookup, zap.NewNop(), "party-1", model.ItemTypeMeal)

	assert.True(t, h.GroupedBefore("a", "b"))
	assert.False(t, h.GroupedBefore("a", "d"))
}

func TestAggregate_LookupFailureYieldsEmptyHistory(t *testing.T) {
	lookup := &mockLookup{err: errors.New("connection refused")}

	h := Aggregate(context.Background(), lookup, zap.NewNop(), "party-1")

	assert.NotNil(t, h)
	assert.Equal(t, 0, h.Len())
}

func TestAggregate_SkipsMalformedItems(t *testing.T) {
	lookup := &mockLookup{events: []model.PriorEvent{
		{ItemID: "meal-bad", Type: model.ItemTypeMeal, Seats: []string{"a", "", "c"}},
		{ItemID: "meal-dup", Type: model.ItemTypeMeal, Seats: []string{"a", "b", "a"}},
		{ItemID: "event-bad", Type: model.ItemTypeEvent, Teams: map[int][]string{0: {"a", "b"}}},
		{ItemID: "meal-ok", Type: model.ItemTypeMeal, Seats: []string{"x", "y", "z"}},
	}}

	h := Aggregate(context.Background(), lookup, zap.NewNop(), "party-1")

	assert.False(t, h.GroupedBefore("a", "b"))
	assert.False(t, h.GroupedBefore("a", "c"))
	assert.True(t, h.GroupedBefore("x", "z"))
}
