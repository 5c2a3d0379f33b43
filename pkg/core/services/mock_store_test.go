package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jakechorley/party-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// mockStore is an in-memory db.Database
type mockStore struct {
	parties    map[string]*db.Party
	items      map[string]*db.PartyItem
	people     map[string]model.Person
	guests     map[string][]db.Guest // by party
	priorByID  map[string][]model.PriorEvent
	seating    map[string][]db.SeatingArrangement
	teams      map[string][]db.TeamAssignment
	historyErr error
	insertErr  error

	insertedItems []db.PartyItem
	deletedSeats  []string
	deletedTeams  []string
}

func newMockStore() *mockStore {
	return &mockStore{
		parties:   map[string]*db.Party{},
		items:     map[string]*db.PartyItem{},
		people:    map[string]model.Person{},
		guests:    map[string][]db.Guest{},
		priorByID: map[string][]model.PriorEvent{},
		seating:   map[string][]db.SeatingArrangement{},
		teams:     map[string][]db.TeamAssignment{},
	}
}

func (m *mockStore) addGuest(partyID string, p model.Person) {
	m.people[p.ID] = p
	m.guests[partyID] = append(m.guests[partyID], db.Guest{ID: p.ID, Name: p.Name, Category: p.Category})
}

func (m *mockStore) GetPeople(ctx context.Context, ids []string) ([]model.Person, error) {
	var people []model.Person
	for _, id := range ids {
		if p, ok := m.people[id]; ok {
			people = append(people, p)
		}
	}
	return people, nil
}

func (m *mockStore) GetPriorEvents(ctx context.Context, partyID string) ([]model.PriorEvent, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	return m.priorByID[partyID], nil
}

func (m *mockStore) GetParty(ctx context.Context, partyID string) (*db.Party, error) {
	party, ok := m.parties[partyID]
	if !ok {
		return nil, fmt.Errorf("party %s not found", partyID)
	}
	return party, nil
}

func (m *mockStore) GetPartyItem(ctx context.Context, itemID string) (*db.PartyItem, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, fmt.Errorf("party item %s not found", itemID)
	}
	return item, nil
}

func (m *mockStore) GetPartyItems(ctx context.Context, partyID string) ([]db.PartyItem, error) {
	var items []db.PartyItem
	for _, item := range m.items {
		if item.PartyID == partyID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *mockStore) InsertPartyItems(ctx context.Context, items []db.PartyItem) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for i := range items {
		item := items[i]
		m.items[item.ID] = &item
	}
	m.insertedItems = append(m.insertedItems, items...)
	return nil
}

func (m *mockStore) GetGuests(ctx context.Context, partyID string) ([]db.Guest, error) {
	return m.guests[partyID], nil
}

func (m *mockStore) GetSeating(ctx context.Context, itemID string) ([]db.SeatingArrangement, error) {
	return m.seating[itemID], nil
}

func (m *mockStore) GetTeams(ctx context.Context, itemID string) ([]db.TeamAssignment, error) {
	return m.teams[itemID], nil
}

func (m *mockStore) DeleteSeatingFor(ctx context.Context, itemID string) error {
	m.deletedSeats = append(m.deletedSeats, itemID)
	delete(m.seating, itemID)
	return nil
}

func (m *mockStore) InsertSeating(ctx context.Context, itemID string, seats []model.SeatAssignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, seat := range seats {
		m.seating[itemID] = append(m.seating[itemID], db.SeatingArrangement{
			PartyItemID: itemID,
			GuestID:     seat.PersonID,
			GuestName:   m.people[seat.PersonID].Name,
			Position:    seat.Position,
			IsGenerated: seat.Generated,
		})
	}
	return nil
}

func (m *mockStore) DeleteTeamsFor(ctx context.Context, itemID string) error {
	m.deletedTeams = append(m.deletedTeams, itemID)
	delete(m.teams, itemID)
	return nil
}

func (m *mockStore) InsertTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, row := range teams {
		m.teams[itemID] = append(m.teams[itemID], db.TeamAssignment{
			PartyItemID: itemID,
			GuestID:     row.PersonID,
			GuestName:   m.people[row.PersonID].Name,
			TeamNumber:  row.TeamNumber,
			IsGenerated: row.Generated,
		})
	}
	return nil
}

var _ db.Database = (*mockStore)(nil)

// mockPublisher records published arrangements
type mockPublisher struct {
	spreadsheetID string
	published     *sheetsclient.PublishedArrangement
	err           error
}

func (m *mockPublisher) PublishArrangement(spreadsheetID string, arrangement *sheetsclient.PublishedArrangement) error {
	if m.err != nil {
		return m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = arrangement
	return nil
}

var errUnavailable = errors.New("database unavailable")
