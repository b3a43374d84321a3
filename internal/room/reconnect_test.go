package room

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/game"
	"github.com/stargroups/aram-lobby-backend/internal/protocol"
)

// bareCoordinator builds a coordinator without its loop so the reconnect
// reconciliation can be exercised synchronously.
func bareCoordinator() *Coordinator {
	opts := Options{}
	opts.withDefaults()
	return &Coordinator{
		conns: make(map[string]chan []byte),
		opts:  opts,
		log:   zap.NewNop(),
		ctx:   context.Background(),
	}
}

func (c *Coordinator) attach(id string) chan []byte {
	ch := make(chan []byte, 16)
	c.conns[id] = ch
	return ch
}

func readFrame(t *testing.T, ch chan []byte) protocol.Frame {
	t.Helper()
	select {
	case raw := <-ch:
		var f protocol.Frame
		require.NoError(t, json.Unmarshal(raw, &f))
		return f
	default:
		t.Fatal("no frame queued")
		return protocol.Frame{}
	}
}

// seededRoom has one connected host called Ray seated on team1 slot 0.
func seededRoom(c *Coordinator) *liveRoom {
	st := game.NewState("host")
	host := st.AddPlayer("host", "Ray", game.Stats{Nickname: "Ray", Wins: 5, Losses: 1, RerollCount: 7}, true)
	_ = st.Place(host, game.TeamOne, 0)
	c.room = &liveRoom{ID: "r1", Name: "scrims", Members: []string{"host"}, State: st}
	return c.room
}

func TestReconcile_NoRoom(t *testing.T) {
	c := bareCoordinator()
	ch := c.attach("n1")

	c.handleReconnect("n1", protocol.ReconnectPlayer{Nickname: "Ray"})

	f := readFrame(t, ch)
	assert.Equal(t, protocol.EvtRoomStatus, f.Event)
	var exists bool
	require.NoError(t, json.Unmarshal(f.Data, &exists))
	assert.False(t, exists)
}

func TestReconcile_AlreadyKnownResendsStats(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	ch := c.attach("host")

	c.handleReconnect("host", protocol.ReconnectPlayer{Nickname: "Somebody"})

	f := readFrame(t, ch)
	assert.Equal(t, protocol.EvtPlayerStatsUpdated, f.Event)
	var rec game.Stats
	require.NoError(t, json.Unmarshal(f.Data, &rec))
	assert.Equal(t, "Ray", rec.Nickname)
	assert.Len(t, r.Members, 1)
}

func TestReconcile_LiveNicknameGetsCopy(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	c.attach("host")
	ch := c.attach("n2")

	c.handleReconnect("n2", protocol.ReconnectPlayer{Nickname: "Ray"})

	f := readFrame(t, ch)
	require.Equal(t, protocol.EvtPlayerStatsUpdated, f.Event)
	var rec game.Stats
	require.NoError(t, json.Unmarshal(f.Data, &rec))

	// A fresh numbered identity carrying the same numbers.
	assert.Equal(t, "Player1", rec.Nickname)
	assert.Equal(t, 5, rec.Wins)
	assert.Equal(t, 7, rec.RerollCount)

	p := r.State.Players["n2"]
	require.NotNil(t, p)
	assert.Equal(t, game.TeamWaiting, p.Team)
	assert.Same(t, p, r.State.Waiting[0])

	// The original record is untouched.
	assert.Equal(t, "Ray", r.State.Players["host"].Stats.Nickname)
	assert.Len(t, r.Members, 2)
}

func TestReconcile_StaleRecordIsTakenOver(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	ghost := r.State.AddPlayer("ghost", "Wolf", game.Stats{Nickname: "Wolf", Wins: 3, RerollCount: 2}, false)
	_ = r.State.Place(ghost, game.TeamTwo, 0)
	// The connection behind the record is gone.
	c.attach("n3")

	c.handleReconnect("n3", protocol.ReconnectPlayer{
		Nickname: "Wolf",
		Seat:     &protocol.SeatHint{Team: game.TeamTwo, Index: 3},
	})

	assert.NotContains(t, r.State.Players, "ghost")
	p := r.State.Players["n3"]
	require.NotNil(t, p)
	assert.Equal(t, "Wolf", p.Nickname)
	assert.Equal(t, 3, p.Stats.Wins)
	assert.Same(t, p, r.State.TeamTwo[3])
	assert.Nil(t, r.State.TeamTwo[0])
	assert.Contains(t, r.Members, "n3")
}

func TestReconcile_TakeoverWithoutHintKeepsOldSeat(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	ghost := r.State.AddPlayer("ghost", "Wolf", game.DefaultStats("Wolf"), false)
	_ = r.State.Place(ghost, game.TeamTwo, 2)
	c.attach("n3")

	c.handleReconnect("n3", protocol.ReconnectPlayer{Nickname: "Wolf"})

	p := r.State.Players["n3"]
	require.NotNil(t, p)
	assert.Same(t, p, r.State.TeamTwo[2])
}

func TestReconcile_TakeoverOccupiedHintFallsBack(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	ghost := r.State.AddPlayer("ghost", "Wolf", game.DefaultStats("Wolf"), false)
	_ = r.State.Place(ghost, game.TeamTwo, 2)
	c.attach("n3")

	// The hinted seat is held by the live host; the old seat survives.
	c.handleReconnect("n3", protocol.ReconnectPlayer{
		Nickname: "Wolf",
		Seat:     &protocol.SeatHint{Team: game.TeamOne, Index: 0},
	})

	p := r.State.Players["n3"]
	require.NotNil(t, p)
	assert.Same(t, p, r.State.TeamTwo[2])
	assert.Same(t, r.State.Players["host"], r.State.TeamOne[0])
}

func TestReconcile_UnknownNicknameRegistersFresh(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	ch := c.attach("n4")

	c.handleReconnect("n4", protocol.ReconnectPlayer{
		Nickname: "Nova",
		Stats:    &game.Stats{Nickname: "whatever", Wins: 2, RerollCount: 4},
		Seat:     &protocol.SeatHint{Team: game.TeamTwo, Index: 1},
	})

	f := readFrame(t, ch)
	require.Equal(t, protocol.EvtPlayerStatsUpdated, f.Event)
	var rec game.Stats
	require.NoError(t, json.Unmarshal(f.Data, &rec))
	assert.Equal(t, "Nova", rec.Nickname)
	assert.Equal(t, 2, rec.Wins)

	p := r.State.Players["n4"]
	require.NotNil(t, p)
	assert.Same(t, p, r.State.TeamTwo[1])
}

func TestReconcile_FreshTakenSeatHintGoesToWaiting(t *testing.T) {
	c := bareCoordinator()
	r := seededRoom(c)
	c.attach("n4")

	c.handleReconnect("n4", protocol.ReconnectPlayer{
		Nickname: "Nova",
		Seat:     &protocol.SeatHint{Team: game.TeamOne, Index: 0},
	})

	p := r.State.Players["n4"]
	require.NotNil(t, p)
	assert.Equal(t, game.TeamWaiting, p.Team)
	assert.Same(t, p, r.State.Waiting[0])
}
