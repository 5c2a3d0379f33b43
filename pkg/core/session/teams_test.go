package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

func team(name string, ids ...string) model.Team {
	members := make([]model.TeamMember, len(ids))
	for i, id := range ids {
		members[i] = model.TeamMember{Person: model.Person{ID: id, Name: id}}
	}
	return model.Team{ID: name, Name: name, Members: members}
}

func memberIDs(t model.Team) []string {
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.Person.ID
	}
	return ids
}

func teamOptions() []model.TeamOption {
	return []model.TeamOption{
		{Score: 0, Arrangement: model.Teams{team("Team 1", "a", "b", "c"), team("Team 2", "d", "e", "f")}},
		{Score: -15, Arrangement: model.Teams{team("Team 1", "a", "d", "c"), team("Team 2", "b", "e", "f")}},
	}
}

// mockTeamStore implements db.TeamStore
type mockTeamStore struct {
	deleted   []string
	inserted  map[string][]model.TeamAssignment
	insertErr error
}

func (m *mockTeamStore) DeleteTeamsFor(ctx context.Context, itemID string) error {
	m.deleted = append(m.deleted, itemID)
	return nil
}

func (m *mockTeamStore) InsertTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if m.inserted == nil {
		m.inserted = map[string][]model.TeamAssignment{}
	}
	m.inserted[itemID] = teams
	return nil
}

// mockReplacingTeamStore also implements db.TeamReplacer
type mockReplacingTeamStore struct {
	mockTeamStore
	replaced map[string][]model.TeamAssignment
}

func (m *mockReplacingTeamStore) ReplaceTeams(ctx context.Context, itemID string, teams []model.TeamAssignment) error {
	if m.replaced == nil {
		m.replaced = map[string][]model.TeamAssignment{}
	}
	m.replaced[itemID] = teams
	return nil
}

func TestTeamSession_MoveBetweenTeams(t *testing.T) {
	s, err := NewTeamSession(teamOptions(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.MoveBetweenTeams(0, 1, 1, 0))

	working := s.Working()
	assert.Equal(t, []string{"a", "c"}, memberIDs(working[0]))
	assert.Equal(t, []string{"b", "d", "e", "f"}, memberIDs(working[1]))
	assert.True(t, working[1].Members[0].AdjustedByUser)
	assert.False(t, working[1].Members[1].AdjustedByUser)
	assert.Equal(t, 6, working.Size())
}

func TestTeamSession_ReorderWithinTeamIsNotAnAdjustment(t *testing.T) {
	s, err := NewTeamSession(teamOptions(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.MoveBetweenTeams(0, 0, 0, 2))

	working := s.Working()
	assert.Equal(t, []string{"b", "c", "a"}, memberIDs(working[0]))
	for _, member := range working[0].Members {
		assert.False(t, member.AdjustedByUser)
	}
}

func TestTeamSession_MoveAppendsAtEnd(t *testing.T) {
	s, err := NewTeamSession(teamOptions(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.MoveBetweenTeams(1, 2, 0, 3))
	assert.Equal(t, []string{"a", "b", "c", "f"}, memberIDs(s.Working()[0]))
}

func TestTeamSession_MoveRejectsBadIndexes(t *testing.T) {
	s, err := NewTeamSession(teamOptions(), zap.NewNop())
	require.NoError(t, err)

	assert.ErrorIs(t, s.MoveBetweenTeams(2, 0, 0, 0), ErrOutOfRange)
	assert.ErrorIs(t, s.MoveBetweenTeams(0, 3, 1, 0), ErrOutOfRange)
	assert.ErrorIs(t, s.MoveBetweenTeams(0, 0, 1, 5), ErrOutOfRange)
	assert.ErrorIs(t, s.MoveBetweenTeams(0, 0, 0, 3), ErrOutOfRange)

	// Nothing changed
	assert.Equal(t, teamOptions()[0].Arrangement, s.Working())
}

func TestTeamSession_MoveRejectsEmptyingATeam(t *testing.T) {
	options := []model.TeamOption{
		{Arrangement: model.Teams{team("Team 1", "a"), team("Team 2", "b", "c")}},
	}
	s, err := NewTeamSession(options, zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, s.MoveBetweenTeams(0, 0, 1, 0))
	assert.Equal(t, []string{"a"}, memberIDs(s.Working()[0]))
}

func TestTeamSession_ResetRestoresOriginal(t *testing.T) {
	options := teamOptions()
	s, err := NewTeamSession(options, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.MoveBetweenTeams(0, 0, 1, 0))
	require.True(t, s.Next())
	require.NoError(t, s.MoveBetweenTeams(1, 0, 0, 0))

	s.Reset()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, s.Original(), s.Working())
	assert.Equal(t, options[0].Arrangement, s.Working())
	for _, tm := range s.Working() {
		for _, member := range tm.Members {
			assert.False(t, member.AdjustedByUser)
		}
	}
}

func TestTeamSession_SelectOptionCopies(t *testing.T) {
	options := teamOptions()
	s, err := NewTeamSession(options, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.SelectOption(1))
	require.NoError(t, s.MoveBetweenTeams(0, 0, 1, 0))

	assert.Equal(t, []string{"a", "d", "c"}, memberIDs(options[1].Arrangement[0]))
	assert.Equal(t, -15.0, s.Score())
}

func TestTeamAssignments(t *testing.T) {
	teams := model.Teams{team("Team 1", "a", "b"), team("Team 2", "c")}
	teams[1].Members[0].AdjustedByUser = true

	assert.Equal(t, []model.TeamAssignment{
		{PersonID: "a", TeamNumber: 1, Generated: true},
		{PersonID: "b", TeamNumber: 1, Generated: true},
		{PersonID: "c", TeamNumber: 2, Generated: false},
	}, TeamAssignments(teams))
}

func TestTeamSession_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("delete then insert", func(t *testing.T) {
		s, err := NewTeamSession(teamOptions(), zap.NewNop())
		require.NoError(t, err)

		store := &mockTeamStore{}
		require.NoError(t, s.Commit(ctx, store, "event-1"))

		assert.Equal(t, []string{"event-1"}, store.deleted)
		rows := store.inserted["event-1"]
		require.Len(t, rows, 6)
		assert.Equal(t, 1, rows[0].TeamNumber)
		assert.Equal(t, 2, rows[5].TeamNumber)
	})

	t.Run("uses atomic replace when available", func(t *testing.T) {
		s, err := NewTeamSession(teamOptions(), zap.NewNop())
		require.NoError(t, err)

		store := &mockReplacingTeamStore{}
		require.NoError(t, s.Commit(ctx, store, "event-1"))

		assert.Len(t, store.replaced["event-1"], 6)
		assert.Empty(t, store.deleted)
	})

	t.Run("insert failure", func(t *testing.T) {
		s, err := NewTeamSession(teamOptions(), zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, s.MoveBetweenTeams(0, 0, 1, 0))
		before := s.Working().Clone()

		store := &mockTeamStore{insertErr: errors.New("timeout")}
		err = s.Commit(ctx, store, "event-1")

		assert.ErrorIs(t, err, ErrCommitIncomplete)
		assert.Equal(t, before, s.Working())
	})
}
