package room

import (
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/game"
	"github.com/stargroups/aram-lobby-backend/internal/protocol"
)

// Frames are marshalled once inside the actor loop, so fan-out never
// hands live state pointers to other goroutines.

func (c *Coordinator) send(clientID, event string, data any) {
	ch, ok := c.conns[clientID]
	if !ok {
		return
	}
	frame, err := protocol.Encode(event, data)
	if err != nil {
		c.log.Error("encode frame", zap.String("event", event), zap.Error(err))
		return
	}
	c.deliver(clientID, ch, frame)
}

func (c *Coordinator) deliver(clientID string, ch chan []byte, frame []byte) {
	select {
	case ch <- frame:
	default:
		// Slow or gone. Drop the connection; the ws layer's exit path
		// posts the Disconnect that cleans up room membership.
		close(ch)
		delete(c.conns, clientID)
		c.log.Warn("dropping slow client", zap.String("client", clientID))
	}
}

// broadcastAll reaches every connection, in the room or not.
func (c *Coordinator) broadcastAll(event string, data any) {
	frame, err := protocol.Encode(event, data)
	if err != nil {
		c.log.Error("encode frame", zap.String("event", event), zap.Error(err))
		return
	}
	for id, ch := range c.conns {
		c.deliver(id, ch, frame)
	}
}

// broadcastRoom reaches every room member.
func (c *Coordinator) broadcastRoom(event string, data any) {
	if c.room == nil {
		return
	}
	frame, err := protocol.Encode(event, data)
	if err != nil {
		c.log.Error("encode frame", zap.String("event", event), zap.Error(err))
		return
	}
	for _, id := range c.room.Members {
		if ch, ok := c.conns[id]; ok {
			c.deliver(id, ch, frame)
		}
	}
}

// broadcastTeam reaches the members seated in one seat group.
func (c *Coordinator) broadcastTeam(team game.Team, event string, data any) {
	if c.room == nil {
		return
	}
	frame, err := protocol.Encode(event, data)
	if err != nil {
		c.log.Error("encode frame", zap.String("event", event), zap.Error(err))
		return
	}
	for _, id := range c.room.Members {
		p, ok := c.room.State.Players[id]
		if !ok || p.Team != team {
			continue
		}
		if ch, ok := c.conns[id]; ok {
			c.deliver(id, ch, frame)
		}
	}
}

// broadcastState sends the authoritative snapshot after a mutation.
func (c *Coordinator) broadcastState() {
	if c.room == nil {
		return
	}
	c.broadcastRoom(protocol.EvtGameState, c.room.State)
}
