package history

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// Lookup fetches the persisted outcomes of earlier meals and events in a party
type Lookup interface {
	GetPriorEvents(ctx context.Context, partyID string) ([]model.PriorEvent, error)
}

// History records who has previously been grouped with whom: seated next to at a
// meal or teamed with at an event. The relation is undirected.
type History struct {
	grouped map[string]map[string]struct{}
}

// New returns an empty history
func New() *History {
	return &History{grouped: make(map[string]map[string]struct{})}
}

// Add records that a and b were grouped together
func (h *History) Add(a, b string) {
	if a == b {
		return
	}
	h.link(a, b)
	h.link(b, a)
}

func (h *History) link(from, to string) {
	set, ok := h.grouped[from]
	if !ok {
		set = make(map[string]struct{})
		h.grouped[from] = set
	}
	set[to] = struct{}{}
}

// GroupedBefore reports whether a and b were grouped in any prior event
func (h *History) GroupedBefore(a, b string) bool {
	if h == nil {
		return false
	}
	if _, ok := h.grouped[a][b]; ok {
		return true
	}
	_, ok := h.grouped[b][a]
	return ok
}

// GroupedWith returns the sorted ids previously grouped with the given person
func (h *History) GroupedWith(id string) []string {
	if h == nil {
		return nil
	}
	ids := make([]string, 0, len(h.grouped[id]))
	for other := range h.grouped[id] {
		ids = append(ids, other)
	}
	slices.Sort(ids)
	return ids
}

// People returns the sorted ids of everyone with at least one recorded grouping
func (h *History) People() []string {
	if h == nil {
		return nil
	}
	ids := make([]string, 0, len(h.grouped))
	for id := range h.grouped {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of people with recorded groupings
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.grouped)
}

// AddMeal records every seat's left and right neighbour around a circular table
func (h *History) AddMeal(seats []string) {
	n := len(seats)
	for i, current := range seats {
		h.Add(current, seats[(i+1)%n])
		h.Add(current, seats[(i-1+n)%n])
	}
}

// AddEvent records every pair of team mates
func (h *History) AddEvent(teams map[int][]string) {
	for _, members := range teams {
		for i := range members {
			for j := i + 1; j < len(members); j++ {
				h.Add(members[i], members[j])
			}
		}
	}
}

// Aggregate builds the history for a party from its prior events, restricted to the
// given item types. A failed lookup is logged and yields an empty history; malformed
// items are skipped individually.
func Aggregate(ctx context.Context, lookup Lookup, logger *zap.Logger, partyID string, types ...model.ItemType) *History {
	h := New()

	logger.Debug("Aggregating history", zap.String("party_id", partyID), zap.Any("types", types))

	events, err := lookup.GetPriorEvents(ctx, partyID)
	if err != nil {
		logger.Warn("History unavailable, continuing without it",
			zap.String("party_id", partyID),
			zap.Error(err))
		return h
	}
	if len(events) == 0 {
		logger.Debug("No prior events found", zap.String("party_id", partyID))
		return h
	}

	meals, teamEvents := 0, 0
	for _, event := range events {
		if len(types) > 0 && !slices.Contains(types, event.Type) {
			continue
		}

		if err := validateEvent(event); err != nil {
			logger.Warn("Skipping malformed prior event",
				zap.String("item_id", event.ItemID),
				zap.Error(err))
			continue
		}

		switch event.Type {
		case model.ItemTypeMeal:
			h.AddMeal(event.Seats)
			meals++
		case model.ItemTypeEvent:
			h.AddEvent(event.Teams)
			teamEvents++
		}
	}

	logger.Debug("History aggregated",
		zap.Int("meals", meals),
		zap.Int("events", teamEvents),
		zap.Int("people", h.Len()))

	return h
}

func validateEvent(event model.PriorEvent) error {
	switch event.Type {
	case model.ItemTypeMeal:
		seen := make(map[string]bool, len(event.Seats))
		for i, id := range event.Seats {
			if id == "" {
				return fmt.Errorf("seat %d has no person", i)
			}
			if seen[id] {
				return fmt.Errorf("person %s is seated more than once", id)
			}
			seen[id] = true
		}
	case model.ItemTypeEvent:
		seen := make(map[string]bool)
		for number, members := range event.Teams {
			if number < 1 {
				return fmt.Errorf("invalid team number %d", number)
			}
			for _, id := range members {
				if id == "" {
					return fmt.Errorf("team %d has a member with no person", number)
				}
				if seen[id] {
					return fmt.Errorf("person %s is on more than one team", id)
				}
				seen[id] = true
			}
		}
	default:
		return fmt.Errorf("unknown item type %q", event.Type)
	}
	return nil
}
