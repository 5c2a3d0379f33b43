package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/history"
	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// HistoryStore defines the database operations needed to summarise a party's history
type HistoryStore interface {
	db.HistoryLookup
	GetGuests(ctx context.Context, partyID string) ([]db.Guest, error)
}

// HistoryEntry lists everyone a guest has sat next to or shared a team with
type HistoryEntry struct {
	GuestID     string
	Name        string
	GroupedWith []string // names, sorted
}

// ViewHistory summarises the "grouped before" relation across every meal and event of a party
func ViewHistory(ctx context.Context, store HistoryStore, logger *zap.Logger, partyID string) ([]HistoryEntry, error) {
	guests, err := store.GetGuests(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch party guests: %w", err)
	}
	names := make(map[string]string, len(guests))
	for _, guest := range guests {
		names[guest.ID] = guest.Name
	}
	nameOf := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id
	}

	h := history.Aggregate(ctx, store, logger, partyID, model.ItemTypeMeal, model.ItemTypeEvent)

	entries := make([]HistoryEntry, 0, h.Len())
	for _, id := range h.People() {
		grouped := h.GroupedWith(id)
		groupedNames := make([]string, len(grouped))
		for i, other := range grouped {
			groupedNames[i] = nameOf(other)
		}
		sort.Strings(groupedNames)

		entries = append(entries, HistoryEntry{
			GuestID:     id,
			Name:        nameOf(id),
			GroupedWith: groupedNames,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	logger.Debug("History summarised", zap.String("party_id", partyID), zap.Int("guests", len(entries)))
	return entries, nil
}
