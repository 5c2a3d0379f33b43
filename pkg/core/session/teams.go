package session

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
	"github.com/jakechorley/party-planner/pkg/db"
)

// TeamSession edits and commits the teams of one event
type TeamSession struct {
	*Session[model.Teams]
	logger *zap.Logger
}

// NewTeamSession starts a session on the best option
func NewTeamSession(options []model.TeamOption, logger *zap.Logger) (*TeamSession, error) {
	s, err := newSession(options)
	if err != nil {
		return nil, err
	}
	return &TeamSession{Session: s, logger: logger}, nil
}

// MoveBetweenTeams takes member fromIndex of fromTeam and inserts them at toIndex of toTeam.
// Reordering within a team is display-only; a member moved to another team is flagged
// as user-adjusted. A move that would leave a team empty is rejected.
func (s *TeamSession) MoveBetweenTeams(fromTeam, fromIndex, toTeam, toIndex int) error {
	teams := s.working
	if fromTeam < 0 || fromTeam >= len(teams) || toTeam < 0 || toTeam >= len(teams) {
		return fmt.Errorf("%w: team %d -> %d of %d", ErrOutOfRange, fromTeam, toTeam, len(teams))
	}
	source := teams[fromTeam].Members
	if fromIndex < 0 || fromIndex >= len(source) {
		return fmt.Errorf("%w: member %d of team %d (%d members)", ErrOutOfRange, fromIndex, fromTeam, len(source))
	}

	destLen := len(teams[toTeam].Members)
	if fromTeam == toTeam {
		destLen--
	}
	if toIndex < 0 || toIndex > destLen {
		return fmt.Errorf("%w: position %d in team %d (%d members)", ErrOutOfRange, toIndex, toTeam, destLen)
	}
	if fromTeam != toTeam && len(source) == 1 {
		return fmt.Errorf("cannot move the last member out of %s", teams[fromTeam].Name)
	}

	moved := source[fromIndex]
	teams[fromTeam].Members = slices.Delete(slices.Clone(source), fromIndex, fromIndex+1)
	if fromTeam != toTeam {
		moved.AdjustedByUser = true
	}
	teams[toTeam].Members = slices.Insert(slices.Clone(teams[toTeam].Members), toIndex, moved)

	return nil
}

// TeamAssignments converts teams into stored rows numbered from 1 in team order
func TeamAssignments(teams model.Teams) []model.TeamAssignment {
	rows := make([]model.TeamAssignment, 0, teams.Size())
	for i, team := range teams {
		for _, member := range team.Members {
			rows = append(rows, model.TeamAssignment{
				PersonID:   member.Person.ID,
				TeamNumber: i + 1,
				Generated:  !member.AdjustedByUser,
			})
		}
	}
	return rows
}

// Commit stores the working teams for itemID, replacing any saved roster.
// The working teams are kept on failure so the commit can be retried.
func (s *TeamSession) Commit(ctx context.Context, store db.TeamStore, itemID string) error {
	rows := TeamAssignments(s.working)

	s.logger.Debug("Committing teams",
		zap.String("item_id", itemID),
		zap.Int("teams", len(s.working)),
		zap.Int("members", len(rows)))

	if replacer, ok := store.(db.TeamReplacer); ok {
		if err := replacer.ReplaceTeams(ctx, itemID, rows); err != nil {
			return fmt.Errorf("failed to replace teams: %w", err)
		}
		return nil
	}

	if err := store.DeleteTeamsFor(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete existing teams: %w", err)
	}
	if err := store.InsertTeams(ctx, itemID, rows); err != nil {
		s.logger.Warn("Teams deleted but not re-inserted, the event has no stored teams",
			zap.String("item_id", itemID),
			zap.Error(err))
		return fmt.Errorf("%w: failed to insert teams: %w", ErrCommitIncomplete, err)
	}

	return nil
}
