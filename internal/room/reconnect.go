package room

import (
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/game"
	"github.com/stargroups/aram-lobby-backend/internal/protocol"
)

// handleReconnect reconciles an incoming connection carrying hints from a
// previous session against the room's player directory. Four outcomes,
// checked in order: already known, nickname held by a live connection,
// nickname held by a stale record, or no match at all.
func (c *Coordinator) handleReconnect(clientID string, cmd protocol.ReconnectPlayer) {
	r := c.room
	if r == nil {
		c.send(clientID, protocol.EvtRoomStatus, false)
		return
	}

	if p, ok := r.State.Players[clientID]; ok {
		// Same connection asking twice; nothing to reconcile.
		c.send(clientID, protocol.EvtPlayerStatsUpdated, p.Stats)
		return
	}

	var found *game.Player
	if cmd.Nickname != "" {
		found = r.State.FindByNickname(cmd.Nickname)
	}

	switch {
	case found != nil && r.hasMember(found.ID):
		c.reconnectConflict(r, clientID, found)
	case found != nil:
		c.reconnectTakeover(r, clientID, found, cmd.Seat)
	default:
		c.reconnectFresh(r, clientID, cmd)
	}
	c.broadcastState()
}

// reconnectConflict: the nickname's owner is still connected. Give the
// newcomer a fresh numbered nickname and a copy of the stats, so two live
// sessions never merge under one record.
func (c *Coordinator) reconnectConflict(r *liveRoom, clientID string, found *game.Player) {
	nickname := game.DefaultNickname(r.State.Numbers.Next())
	statsCopy := found.Stats
	statsCopy.Nickname = nickname

	p := r.State.AddPlayer(clientID, nickname, statsCopy, false)
	r.State.SeatInWaiting(p)
	r.Members = append(r.Members, clientID)

	c.log.Info("reconnect conflict, issued new identity",
		zap.String("wanted", found.Nickname), zap.String("assigned", nickname))
	c.send(clientID, protocol.EvtPlayerStatsUpdated, statsCopy)
}

// reconnectTakeover: the record exists but its connection is gone.
// Migrate it onto the new identity, preferring the remembered seat, then
// the seat the record still holds, then the waiting room.
func (c *Coordinator) reconnectTakeover(r *liveRoom, clientID string, found *game.Player, hint *protocol.SeatHint) {
	delete(r.State.Players, found.ID)
	found.ID = clientID
	found.IsHost = clientID == r.State.HostID
	r.State.Players[clientID] = found
	r.Members = append(r.Members, clientID)

	seated := false
	if hint != nil && game.ValidTeam(hint.Team) && hint.Index >= 0 && hint.Index < game.SeatCount(hint.Team) {
		if r.State.Seats(hint.Team)[hint.Index] == nil {
			_ = r.State.Place(found, hint.Team, hint.Index)
			seated = true
		}
	}
	if !seated && found.Seated() && r.State.Seats(found.Team)[found.Index] == found {
		// Old seat survived; keep it.
		seated = true
	}
	if !seated {
		r.State.SeatInWaiting(found)
	}

	c.log.Info("reconnect restored player", zap.String("nickname", found.Nickname))
	c.send(clientID, protocol.EvtPlayerStatsUpdated, found.Stats)
}

// reconnectFresh: nothing matched. Register a new player, keeping the
// hinted nickname and stats when they do not collide.
func (c *Coordinator) reconnectFresh(r *liveRoom, clientID string, cmd protocol.ReconnectPlayer) {
	nickname := cmd.Nickname
	if nickname == "" || r.State.NicknameTaken(nickname, clientID) {
		nickname = game.DefaultNickname(r.State.Numbers.Next())
	}

	playerStats := game.DefaultStats(nickname)
	if cmd.Stats != nil {
		playerStats = *cmd.Stats
	}
	playerStats.Nickname = nickname

	p := r.State.AddPlayer(clientID, nickname, playerStats, clientID == r.State.HostID)
	r.Members = append(r.Members, clientID)

	seated := false
	if hint := cmd.Seat; hint != nil && game.ValidTeam(hint.Team) && hint.Index >= 0 && hint.Index < game.SeatCount(hint.Team) {
		if err := r.State.Place(p, hint.Team, hint.Index); err == nil {
			seated = true
		}
	}
	if !seated {
		r.State.SeatInWaiting(p)
	}

	c.log.Info("reconnect registered new player", zap.String("nickname", nickname))
	c.send(clientID, protocol.EvtPlayerStatsUpdated, playerStats)
}
