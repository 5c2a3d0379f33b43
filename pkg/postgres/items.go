package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// GetParty retrieves a party by id
func (d *DB) GetParty(ctx context.Context, partyID string) (*db.Party, error) {
	var p db.Party
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, start_date, end_date FROM parties WHERE id = $1
	`, partyID).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("party %s not found", partyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query party: %w", err)
	}
	return &p, nil
}

const partyItemColumns = `id, party_id, name, type, description, fair_play, scheduled_at, created_at`

// GetPartyItem retrieves a meal or event by id
func (d *DB) GetPartyItem(ctx context.Context, itemID string) (*db.PartyItem, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+partyItemColumns+` FROM party_items WHERE id = $1`, itemID)

	item, err := scanPartyItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("party item %s not found", itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query party item: %w", err)
	}
	return item, nil
}

// GetPartyItems retrieves the meals and events of a party in creation order
func (d *DB) GetPartyItems(ctx context.Context, partyID string) ([]db.PartyItem, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+partyItemColumns+`
		FROM party_items
		WHERE party_id = $1
		ORDER BY scheduled_at NULLS LAST, created_at, id
	`, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query party items: %w", err)
	}
	defer rows.Close()

	var items []db.PartyItem
	for rows.Next() {
		item, err := scanPartyItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party items: %w", err)
	}

	return items, nil
}

// InsertPartyItems inserts meals and events in one transaction
func (d *DB) InsertPartyItems(ctx context.Context, items []db.PartyItem) error {
	if len(items) == 0 {
		return nil
	}

	return d.withTx(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			_, err := tx.Exec(ctx, `
				INSERT INTO party_items (id, party_id, name, type, description, fair_play, scheduled_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, item.ID, item.PartyID, item.Name, string(item.Type), item.Description, item.FairPlay, item.ScheduledAt)
			if err != nil {
				return fmt.Errorf("failed to insert party item %s: %w", item.Name, err)
			}
		}
		return nil
	})
}

func scanPartyItem(row pgx.Row) (*db.PartyItem, error) {
	var item db.PartyItem
	var itemType string
	err := row.Scan(&item.ID, &item.PartyID, &item.Name, &itemType,
		&item.Description, &item.FairPlay, &item.ScheduledAt, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Type = model.ItemType(itemType)
	return &item, nil
}
