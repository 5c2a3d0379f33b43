package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// GetSeating retrieves the stored seats of a meal ordered by position
func (d *DB) GetSeating(ctx context.Context, itemID string) ([]db.SeatingArrangement, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT sa.id, sa.party_item_id, sa.guest_id, g.name, sa.position, sa.is_generated
		FROM seating_arrangements sa
		JOIN guests g ON g.id = sa.guest_id
		WHERE sa.party_item_id = $1
		ORDER BY sa.position
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seating: %w", err)
	}
	defer rows.Close()

	var seats []db.SeatingArrangement
	for rows.Next() {
		var s db.SeatingArrangement
		if err := rows.Scan(&s.ID, &s.PartyItemID, &s.GuestID, &s.GuestName, &s.Position, &s.IsGenerated); err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seating: %w", err)
	}

	return seats, nil
}

// GetTeams retrieves the stored team memberships of an event ordered by team number
func (d *DB) GetTeams(ctx context.Context, itemID string) ([]db.TeamAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT ta.id, ta.party_item_id, ta.guest_id, g.name, ta.team_number, ta.is_generated
		FROM team_assignments ta
		JOIN guests g ON g.id = ta.guest_id
		WHERE ta.party_item_id = $1
		ORDER BY ta.team_number, ta.created_at, ta.id
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var assignments []db.TeamAssignment
	for rows.Next() {
		var a db.TeamAssignment
		if err := rows.Scan(&a.ID, &a.PartyItemID, &a.GuestID, &a.GuestName, &a.TeamNumber, &a.IsGenerated); err != nil {
			return nil, fmt.Errorf("failed to scan team assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}

	return assignments, nil
}

// DeleteSeatingFor removes the stored seating of a meal
func (d *DB) DeleteSeatingFor(ctx context.Context, itemID string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM seating_arrangements WHERE party_item_id = $1`, itemID); err != nil {
		return fmt.Errorf("failed to delete seating: %w", err)
	}
	return nil
}

// InsertSeating stores the seats of a meal in one transaction
func (d *DB) InsertSeating(ctx context.Context, itemID string, seats []model.SeatAssignment) error {
	if len(seats) == 0 {
		return nil
	}
	return d.withTx(ctx, func(tx pgx.Tx) error {
		return insertSeats(ctx, tx, itemID, seats)
	})
}

// ReplaceSeating swaps the stored seating of a meal for seats in one transaction
func (d *DB) ReplaceSeating(ctx context.Context, itemID string, seats []model.SeatAssignment) error {
	return d.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM seating_arrangements WHERE party_item_id = $1`, itemID); err != nil {
			return fmt.Errorf("failed to delete seating: %w", err)
		}
		return insertSeats(ctx, tx, itemID, seats)
	})
}

// DeleteTeamsFor removes the stored teams of an event
func (d *DB) DeleteTeamsFor(ctx context.Context, itemID string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM team_assignments WHERE party_item_id = $1`, itemID); err != nil {
		return fmt.Errorf("failed to delete teams: %w", err)
	}
	return nil
}

// InsertTeams stores the team memberships of an event in one transaction
func (d *DB) InsertTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error {
	if len(teams) == 0 {
		return nil
	}
	return d.withTx(ctx, func(tx pgx.Tx) error {
		return insertTeams(ctx, tx, itemID, teams)
	})
}

// ReplaceTeams swaps the stored teams of an event for teams in one transaction
func (d *DB) ReplaceTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error {
	return d.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM team_assignments WHERE party_item_id = $1`, itemID); err != nil {
			return fmt.Errorf("failed to delete teams: %w", err)
		}
		return insertTeams(ctx, tx, itemID, teams)
	})
}

func insertSeats(ctx context.Context, tx pgx.Tx, itemID string, seats []model.SeatAssignment) error {
	for _, seat := range seats {
		_, err := tx.Exec(ctx, `
			INSERT INTO seating_arrangements (id, party_item_id, guest_id, position, is_generated)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New().String(), itemID, seat.PersonID, seat.Position, seat.Generated)
		if err != nil {
			return fmt.Errorf("failed to insert seat %d: %w", seat.Position, err)
		}
	}
	return nil
}

func insertTeams(ctx context.Context, tx pgx.Tx, itemID string, teams []model.TeamAssignment) error {
	for _, row := range teams {
		_, err := tx.Exec(ctx, `
			INSERT INTO team_assignments (id, party_item_id, guest_id, team_number, is_generated)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New().String(), itemID, row.PersonID, row.TeamNumber, row.Generated)
		if err != nil {
			return fmt.Errorf("failed to insert team assignment for %s: %w", row.PersonID, err)
		}
	}
	return nil
}
