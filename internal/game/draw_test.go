package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawChampion_RespectsExclusions(t *testing.T) {
	exclude := make(map[string]bool)
	for _, c := range Champions[1:] {
		exclude[c] = true
	}

	champion, ok := DrawChampion(exclude)
	require.True(t, ok)
	assert.Equal(t, Champions[0], champion, "only one champion was left")
}

func TestDrawChampion_ExhaustedPool(t *testing.T) {
	exclude := make(map[string]bool)
	for _, c := range Champions {
		exclude[c] = true
	}

	champion, ok := DrawChampion(exclude)
	assert.False(t, ok)
	assert.Empty(t, champion)
}

func TestTeamExclusions(t *testing.T) {
	s := NewState("h")
	p1 := s.AddPlayer("h", "a", DefaultStats("a"), true)
	p2 := s.AddPlayer("c2", "b", DefaultStats("b"), false)
	require.NoError(t, s.Place(p1, TeamOne, 0))
	require.NoError(t, s.Place(p2, TeamOne, 1))
	p1.Champion = "Ahri"
	p2.Champion = "Zed"
	s.TeamOneDiscards = []string{"Lux"}
	s.Banned = []string{"Yasuo"}

	exclude := s.TeamExclusions(TeamOne)
	for _, c := range []string{"Ahri", "Zed", "Lux", "Yasuo"} {
		assert.True(t, exclude[c], c)
	}
	assert.Len(t, exclude, 4)
}

func TestTeamExclusions_WaitingIgnoresBansAndDiscards(t *testing.T) {
	s := NewState("h")
	p := s.AddPlayer("h", "a", DefaultStats("a"), true)
	s.SeatInWaiting(p)
	p.Champion = "Ahri"
	s.Banned = []string{"Yasuo"}

	exclude := s.TeamExclusions(TeamWaiting)
	assert.True(t, exclude["Ahri"])
	assert.False(t, exclude["Yasuo"], "waiting draws ignore the ban list")
	assert.Len(t, exclude, 1)
}
