package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSingleSeat verifies the core seating invariant: every player
// occupies at most one slot across all three groups, and every occupied
// slot agrees with its player's own team/index.
func assertSingleSeat(t *testing.T, s *State) {
	t.Helper()
	seen := make(map[string]int)
	for _, team := range []Team{TeamOne, TeamTwo, TeamWaiting} {
		for i, p := range s.Seats(team) {
			if p == nil {
				continue
			}
			seen[p.ID]++
			assert.Equal(t, team, p.Team, "player %s slot/team mismatch", p.ID)
			assert.Equal(t, i, p.Index, "player %s slot/index mismatch", p.ID)
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "player %s occupies %d seats", id, n)
	}
}

func TestSelectSeat_MovesAndVacatesOldSeat(t *testing.T) {
	s := NewState("h")
	p := s.AddPlayer("h", "a", DefaultStats("a"), true)
	s.SeatInWaiting(p)

	require.NoError(t, s.SelectSeat("h", TeamOne, 2))
	assert.Same(t, p, s.TeamOne[2])
	assert.Nil(t, s.Waiting[0])
	assert.True(t, p.JustMoved)
	assertSingleSeat(t, s)
}

func TestSelectSeat_TakenSlotIsNoOp(t *testing.T) {
	s := NewState("h")
	p1 := s.AddPlayer("h", "a", DefaultStats("a"), true)
	p2 := s.AddPlayer("c2", "b", DefaultStats("b"), false)
	require.NoError(t, s.Place(p1, TeamOne, 0))
	s.SeatInWaiting(p2)

	err := s.SelectSeat("c2", TeamOne, 0)
	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Same(t, p2, s.Waiting[0], "loser of the race keeps its seat")
	assert.False(t, p2.JustMoved)
	assertSingleSeat(t, s)
}

func TestSelectSeat_InvalidIndex(t *testing.T) {
	s := NewState("h")
	p := s.AddPlayer("h", "a", DefaultStats("a"), true)
	s.SeatInWaiting(p)

	assert.ErrorIs(t, s.SelectSeat("h", TeamOne, 5), ErrInvalidSeat)
	assert.ErrorIs(t, s.SelectSeat("h", "team3", 0), ErrInvalidSeat)
	assert.Same(t, p, s.Waiting[0])
}

func TestRandomAssignTeams_SevenPlayersSplitsThreeFour(t *testing.T) {
	s := NewState("h")
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("c%d", i)
		p := s.AddPlayer(id, fmt.Sprintf("p%d", i), DefaultStats(""), false)
		s.SeatInWaiting(p)
	}

	s.RandomAssignTeams()

	countSeated := func(seats []*Player) int {
		n := 0
		for _, p := range seats {
			if p != nil {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 3, countSeated(s.TeamOne))
	assert.Equal(t, 4, countSeated(s.TeamTwo))
	assert.Equal(t, 0, countSeated(s.Waiting), "waiting room is cleared")
	assertSingleSeat(t, s)
}

func TestRandomAssignTeams_TenPlayersFillBothTeams(t *testing.T) {
	s := NewState("h")
	for i := 0; i < 10; i++ {
		p := s.AddPlayer(fmt.Sprintf("c%d", i), fmt.Sprintf("p%d", i), DefaultStats(""), false)
		s.SeatInWaiting(p)
	}

	s.RandomAssignTeams()

	for i := 0; i < TeamSize; i++ {
		assert.NotNil(t, s.TeamOne[i])
		assert.NotNil(t, s.TeamTwo[i])
	}
	assertSingleSeat(t, s)
}

func TestRemovePlayer_VacatesSeatAndRecyclesNumber(t *testing.T) {
	s := NewState("h")
	n := s.Numbers.Next()
	p := s.AddPlayer("h", DefaultNickname(n), DefaultStats(""), true)
	require.NoError(t, s.Place(p, TeamTwo, 3))

	s.RemovePlayer("h")

	assert.Nil(t, s.TeamTwo[3])
	assert.NotContains(t, s.Players, "h")
	assert.Equal(t, n, s.Numbers.Next(), "number should be recycled")
}
