package db

import (
	"time"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

// Party is a bounded collection of meals and events sharing one guest list
type Party struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// PartyItem is a meal or event within a party
type PartyItem struct {
	ID      string
	PartyID string
	Name    string
	Type    model.ItemType
	// Description holds the JSON-encoded EventConfig for events
	Description string
	FairPlay    bool
	ScheduledAt *time.Time
	CreatedAt   time.Time
}

// Guest is a person who can be invited to any number of parties
type Guest struct {
	ID       string
	Name     string
	Category model.Category
}

// GuestRelationship flags two guests as kin or partners. Stored one-sided.
type GuestRelationship struct {
	GuestID        string
	RelatedGuestID string
}

// SeatingArrangement is one stored seat of a meal
type SeatingArrangement struct {
	ID          string
	PartyItemID string
	GuestID     string
	GuestName   string
	Position    int
	IsGenerated bool
}

// TeamAssignment is one stored team membership of an event
type TeamAssignment struct {
	ID          string
	PartyItemID string
	GuestID     string
	GuestName   string
	TeamNumber  int
	IsGenerated bool
}
