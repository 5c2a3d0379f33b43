package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestViewParty(t *testing.T) {
	store := planningStore(t, fourGuests())

	overview, err := ViewParty(context.Background(), store, zap.NewNop(), "party-1")
	require.NoError(t, err)

	assert.Equal(t, "Lakeside Weekend", overview.Party.Name)
	assert.Len(t, overview.Items, 2)
	assert.Len(t, overview.Guests, 4)

	_, err = ViewParty(context.Background(), store, zap.NewNop(), "missing")
	assert.ErrorContains(t, err, "failed to fetch party")
}
