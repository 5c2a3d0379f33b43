package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// GetPriorEvents retrieves the stored seating of every meal and the stored teams of every
// event in a party. Items with nothing stored are left out.
func (d *DB) GetPriorEvents(ctx context.Context, partyID string) ([]model.PriorEvent, error) {
	var events []model.PriorEvent
	index := make(map[string]int)

	eventFor := func(itemID string, itemType model.ItemType) *model.PriorEvent {
		i, ok := index[itemID]
		if !ok {
			i = len(events)
			index[itemID] = i
			events = append(events, model.PriorEvent{ItemID: itemID, Type: itemType})
		}
		return &events[i]
	}

	seatRows, err := d.pool.Query(ctx, `
		SELECT sa.party_item_id, sa.guest_id
		FROM seating_arrangements sa
		JOIN party_items pi ON pi.id = sa.party_item_id
		WHERE pi.party_id = $1 AND pi.type = 'meal'
		ORDER BY pi.created_at, sa.party_item_id, sa.position
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prior seating: %w", err)
	}
	defer seatRows.Close()

	for seatRows.Next() {
		var itemID, guestID string
		if err := seatRows.Scan(&itemID, &guestID); err != nil {
			return nil, fmt.Errorf("failed to scan prior seat: %w", err)
		}
		event := eventFor(itemID, model.ItemTypeMeal)
		event.Seats = append(event.Seats, guestID)
	}
	if err := seatRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prior seating: %w", err)
	}
	seatRows.Close()

	teamRows, err := d.pool.Query(ctx, `
		SELECT ta.party_item_id, ta.guest_id, ta.team_number
		FROM team_assignments ta
		JOIN party_items pi ON pi.id = ta.party_item_id
		WHERE pi.party_id = $1 AND pi.type = 'event'
		ORDER BY pi.created_at, ta.party_item_id, ta.team_number
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prior teams: %w", err)
	}
	defer teamRows.Close()

	for teamRows.Next() {
		var itemID, guestID string
		var teamNumber int
		if err := teamRows.Scan(&itemID, &guestID, &teamNumber); err != nil {
			return nil, fmt.Errorf("failed to scan prior team assignment: %w", err)
		}
		event := eventFor(itemID, model.ItemTypeEvent)
		if event.Teams == nil {
			event.Teams = make(map[int][]string)
		}
		event.Teams[teamNumber] = append(event.Teams[teamNumber], guestID)
	}
	if err := teamRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prior teams: %w", err)
	}

	return events, nil
}
