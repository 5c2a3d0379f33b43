package db

import (
	"context"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// PeopleLookup fetches people with their relationships inline
type PeopleLookup interface {
	GetPeople(ctx context.Context, ids []string) ([]model.Person, error)
}

// HistoryLookup returns the persisted outcomes of every meal and event in a party
type HistoryLookup interface {
	GetPriorEvents(ctx context.Context, partyID string) ([]model.PriorEvent, error)
}

// SeatingStore persists meal seatings
type SeatingStore interface {
	DeleteSeatingFor(ctx context.Context, itemID string) error
	InsertSeating(ctx context.Context, itemID string, seats []model.SeatAssignment) error
}

// SeatingReplacer is implemented by stores that can swap a seating in one transaction
type SeatingReplacer interface {
	ReplaceSeating(ctx context.Context, itemID string, seats []model.SeatAssignment) error
}

// TeamStore persists event team rosters
type TeamStore interface {
	DeleteTeamsFor(ctx context.Context, itemID string) error
	InsertTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error
}

// TeamReplacer is implemented by stores that can swap a roster in one transaction
type TeamReplacer interface {
	ReplaceTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error
}

// ArrangementStore reads and writes stored arrangements
type ArrangementStore interface {
	SeatingStore
	TeamStore
	GetSeating(ctx context.Context, itemID string) ([]SeatingArrangement, error)
	GetTeams(ctx context.Context, itemID string) ([]TeamAssignment, error)
}

// PartyStore defines the interface for party and party item operations
type PartyStore interface {
	GetParty(ctx context.Context, partyID string) (*Party, error)
	GetPartyItem(ctx context.Context, itemID string) (*PartyItem, error)
	GetPartyItems(ctx context.Context, partyID string) ([]PartyItem, error)
	InsertPartyItems(ctx context.Context, items []PartyItem) error
}

// GuestStore lists the guests of a party
type GuestStore interface {
	GetGuests(ctx context.Context, partyID string) ([]Guest, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	PeopleLookup
	HistoryLookup
	ArrangementStore
	PartyStore
	GuestStore
}
