package session

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// SeatingSession edits and commits the seating of one meal
type SeatingSession struct {
	*Session[model.Seating]
	logger *zap.Logger
}

// NewSeatingSession starts a session on the best option
func NewSeatingSession(options []model.SeatingOption, logger *zap.Logger) (*SeatingSession, error) {
	s, err := newSession(options)
	if err != nil {
		return nil, err
	}
	return &SeatingSession{Session: s, logger: logger}, nil
}

// MoveWithinSeating takes the person at from out of the table and reinserts them at to.
// Positions are renumbered and the moved seat is flagged as user-adjusted.
func (s *SeatingSession) MoveWithinSeating(from, to int) error {
	n := len(s.working)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d on a table of %d", ErrOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}

	moved := s.working[from]
	moved.AdjustedByUser = true

	seating := slices.Delete(slices.Clone(s.working), from, from+1)
	seating = slices.Insert(seating, to, moved)

	for i := range seating {
		seating[i].Position = i
	}
	s.working = seating
	return nil
}

// SwapSeats exchanges the people at positions i and j, flagging both seats
func (s *SeatingSession) SwapSeats(i, j int) error {
	n := len(s.working)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: swap %d <-> %d on a table of %d", ErrOutOfRange, i, j, n)
	}
	if i == j {
		return nil
	}

	s.working[i].Person, s.working[j].Person = s.working[j].Person, s.working[i].Person
	s.working[i].AdjustedByUser = true
	s.working[j].AdjustedByUser = true
	return nil
}

// SeatAssignments converts a seating into stored rows; moved seats are not generated
func SeatAssignments(seating model.Seating) []model.SeatAssignment {
	seats := make([]model.SeatAssignment, len(seating))
	for i, pos := range seating {
		seats[i] = model.SeatAssignment{
			PersonID:  pos.Person.ID,
			Position:  pos.Position,
			Generated: !pos.AdjustedByUser,
		}
	}
	return seats
}

// Commit stores the working seating for itemID, replacing any saved seating.
// The working seating is kept on failure so the commit can be retried.
func (s *SeatingSession) Commit(ctx context.Context, store db.SeatingStore, itemID string) error {
	seats := SeatAssignments(s.working)

	s.logger.Debug("Committing seating",
		zap.String("item_id", itemID),
		zap.Int("seats", len(seats)))

	if replacer, ok := store.(db.SeatingReplacer); ok {
		if err := replacer.ReplaceSeating(ctx, itemID, seats); err != nil {
			return fmt.Errorf("failed to replace seating: %w", err)
		}
		return nil
	}

	if err := store.DeleteSeatingFor(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete existing seating: %w", err)
	}
	if err := store.InsertSeating(ctx, itemID, seats); err != nil {
		s.logger.Warn("Seating deleted but not re-inserted, the meal has no stored seating",
			zap.String("item_id", itemID),
			zap.Error(err))
		return fmt.Errorf("%w: failed to insert seating: %w", ErrCommitIncomplete, err)
	}

	return nil
}
