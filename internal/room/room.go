// Package room hosts the single-room session coordinator. All room and
// game state is owned by one goroutine; clients, timers and tests talk to
// it exclusively through its inbox.
package room

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/game"
	"github.com/stargroups/aram-lobby-backend/internal/protocol"
	"github.com/stargroups/aram-lobby-backend/internal/stats"
)

type Msg interface{ isRoomMsg() }

// Connect registers a client connection and the outbox its frames go to.
type Connect struct {
	ClientID string
	Outbox   chan []byte
}

// Disconnect drops a client connection and cleans up its room presence.
type Disconnect struct{ ClientID string }

// FromClient carries one decoded client command.
type FromClient struct {
	ClientID string
	Cmd      protocol.Command
}

// GetView asks for a race-free copy of coordinator scalars (tests only).
type GetView struct{ Reply chan View }

type Shutdown struct{}

// banExpired is posted by the ban-phase timer. gen guards against a fire
// that raced with a finalize.
type banExpired struct{ gen int }

// countdownElapsed is posted when the round countdown runs out. The
// countdown is not cancellable.
type countdownElapsed struct{}

// moveFlagExpired clears a player's transient seat animation flag.
type moveFlagExpired struct{ playerID string }

func (Connect) isRoomMsg()          {}
func (Disconnect) isRoomMsg()       {}
func (FromClient) isRoomMsg()       {}
func (GetView) isRoomMsg()          {}
func (Shutdown) isRoomMsg()         {}
func (banExpired) isRoomMsg()       {}
func (countdownElapsed) isRoomMsg() {}
func (moveFlagExpired) isRoomMsg()  {}

// View is a snapshot of coordinator scalars for tests.
type View struct {
	RoomExists bool
	NumConns   int
	NumMembers int
	HostID     string
	Phase      game.GamePhase
	Mode       game.GameMode
}

// Options tune the coordinator's timers and shared secrets.
type Options struct {
	ResetPassword string
	BanTimeout    time.Duration
	Countdown     time.Duration
	MoveFlagTTL   time.Duration
}

func (o *Options) withDefaults() {
	if o.ResetPassword == "" {
		o.ResetPassword = "boom"
	}
	if o.BanTimeout == 0 {
		o.BanTimeout = 90 * time.Second
	}
	if o.Countdown == 0 {
		o.Countdown = 120 * time.Second
	}
	if o.MoveFlagTTL == 0 {
		o.MoveFlagTTL = time.Second
	}
}

// liveRoom is the one active session, if any.
type liveRoom struct {
	ID      string
	Name    string
	Members []string // connection ids, join order
	State   *game.State

	banTimer *time.Timer
	banGen   int
}

func (r *liveRoom) hasMember(id string) bool {
	for _, m := range r.Members {
		if m == id {
			return true
		}
	}
	return false
}

// Coordinator is the single owning actor for connections and the room.
type Coordinator struct {
	inbox  chan Msg
	conns  map[string]chan []byte
	room   *liveRoom
	opts   Options
	store  stats.Store
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, store stats.Store, log *zap.Logger, opts Options) *Coordinator {
	opts.withDefaults()
	ctx, cancel := context.WithCancel(parent)
	c := &Coordinator{
		inbox:  make(chan Msg, 64),
		conns:  make(map[string]chan []byte),
		opts:   opts,
		store:  store,
		log:    log.Named("room"),
		ctx:    ctx,
		cancel: cancel,
	}
	go c.loop()
	return c
}

func (c *Coordinator) Inbox() chan<- Msg { return c.inbox }

func (c *Coordinator) loop() {
	for {
		select {
		case <-c.ctx.Done():
			c.shutdown()
			return

		case m := <-c.inbox:
			switch msg := m.(type) {
			case Connect:
				c.conns[msg.ClientID] = msg.Outbox
				c.log.Debug("client connected", zap.String("client", msg.ClientID))

			case Disconnect:
				c.handleDisconnect(msg.ClientID)

			case FromClient:
				c.dispatch(msg.ClientID, msg.Cmd)

			case banExpired:
				c.handleBanExpired(msg.gen)

			case countdownElapsed:
				if c.room != nil {
					c.broadcastRoom(protocol.EvtCountdownFinished, nil)
				}

			case moveFlagExpired:
				if c.room != nil {
					if p, ok := c.room.State.Players[msg.playerID]; ok {
						p.JustMoved = false
					}
				}

			case GetView:
				msg.Reply <- c.view()

			case Shutdown:
				c.shutdown()
				return
			}
		}
	}
}

func (c *Coordinator) view() View {
	v := View{NumConns: len(c.conns)}
	if c.room != nil {
		v.RoomExists = true
		v.NumMembers = len(c.room.Members)
		v.HostID = c.room.State.HostID
		v.Phase = c.room.State.Phase
		v.Mode = c.room.State.Mode
	}
	return v
}

func (c *Coordinator) shutdown() {
	c.stopBanTimer()
	for id, ch := range c.conns {
		close(ch)
		delete(c.conns, id)
	}
	c.room = nil
	c.cancel()
}

// dispatch routes one client command to its handler. Every handler runs
// to completion before the next message is read; that is what keeps the
// state invariants simple.
func (c *Coordinator) dispatch(clientID string, cmd protocol.Command) {
	switch cmd := cmd.(type) {
	case protocol.CreateRoom:
		c.handleCreateRoom(clientID, cmd)
	case protocol.JoinRoom:
		c.handleJoinRoom(clientID)
	case protocol.CheckRoom:
		c.send(clientID, protocol.EvtRoomStatus, c.room != nil)
	case protocol.ResetRoom:
		c.handleResetRoom(clientID, cmd.Password)
	case protocol.ChangeNickname:
		c.handleChangeNickname(clientID, cmd.Nickname)
	case protocol.SelectSeat:
		c.handleSelectSeat(clientID, cmd.Team, cmd.Index)
	case protocol.StartGame:
		c.handleStartGame(clientID, cmd.Mode)
	case protocol.RandomAssignTeams:
		c.handleRandomAssignTeams(clientID)
	case protocol.ResetGame:
		c.handleResetGame(clientID, cmd.WinningTeam)
	case protocol.RequestReroll:
		c.handleReroll(clientID)
	case protocol.SwapChampion:
		c.handleSwap(clientID, cmd.Champion)
	case protocol.BanChampion:
		c.handleBanChampion(clientID, cmd.Champion, cmd.Auto)
	case protocol.SelectingBanChampion:
		c.handleSelecting(clientID, cmd.Champion)
	case protocol.UnbanChampion:
		c.handleUnban(clientID, cmd.Champion)
	case protocol.ReconnectPlayer:
		c.handleReconnect(clientID, cmd)
	case protocol.UpdatePlayerStats:
		c.handleUpdateStats(clientID, cmd.Stats)
	}
}

// memberRoom returns the live room if the client belongs to it.
func (c *Coordinator) memberRoom(clientID string) *liveRoom {
	if c.room == nil || !c.room.hasMember(clientID) {
		return nil
	}
	return c.room
}

func newRoomID() string { return uuid.NewString() }
