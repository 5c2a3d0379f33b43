package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// GetGuests retrieves the guest list of a party ordered by name
func (d *DB) GetGuests(ctx context.Context, partyID string) ([]db.Guest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT g.id, g.name, g.category
		FROM guests g
		JOIN party_guests pg ON pg.guest_id = g.id
		WHERE pg.party_id = $1
		ORDER BY g.name, g.id
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer rows.Close()

	var guests []db.Guest
	for rows.Next() {
		var g db.Guest
		var category string
		if err := rows.Scan(&g.ID, &g.Name, &category); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		g.Category = model.Category(category)
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guests: %w", err)
	}

	return guests, nil
}

// GetPeople retrieves the given guests with their relationships, in the order of ids.
// Unknown ids are left out. A relationship stored on either guest counts for both.
func (d *DB) GetPeople(ctx context.Context, ids []string) ([]model.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, name, category FROM guests WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*model.Person, len(ids))
	for rows.Next() {
		var p model.Person
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &category); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Category = model.Category(category)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	relationships, err := d.getRelationships(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range relationships {
		if p, ok := byID[r.GuestID]; ok {
			p.Relationships = appendUnique(p.Relationships, r.RelatedGuestID)
		}
		if p, ok := byID[r.RelatedGuestID]; ok {
			p.Relationships = appendUnique(p.Relationships, r.GuestID)
		}
	}

	people := make([]model.Person, 0, len(byID))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok && !seen[id] {
			seen[id] = true
			people = append(people, *p)
		}
	}
	return people, nil
}

func (d *DB) getRelationships(ctx context.Context, ids []string) ([]db.GuestRelationship, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT guest_id, related_guest_id
		FROM guest_relationships
		WHERE guest_id = ANY($1) OR related_guest_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	var relationships []db.GuestRelationship
	for rows.Next() {
		var r db.GuestRelationship
		if err := rows.Scan(&r.GuestID, &r.RelatedGuestID); err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		relationships = append(relationships, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating relationships: %w", err)
	}

	return relationships, nil
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
