package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargroups/aram-lobby-backend/internal/game"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "Ray")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Upsert(ctx, game.Stats{Nickname: "Ray", Wins: 1, RerollCount: 3}))
	require.NoError(t, s.Upsert(ctx, game.Stats{Nickname: "Ray", Wins: 2, Losses: 1, RerollCount: 5}))

	rec, err := s.Get(ctx, "Ray")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Wins)
	assert.Equal(t, 1, rec.Losses)
	assert.Equal(t, 5, rec.RerollCount)
}
