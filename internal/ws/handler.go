package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/protocol"
	"github.com/stargroups/aram-lobby-backend/internal/room"
)

const (
	writeTimeout = 3 * time.Second
	outboxSize   = 16
)

// Handler upgrades the connection and bridges it to the coordinator: a
// writer goroutine drains the outbox the coordinator fans frames into,
// while the reader loop decodes inbound frames into commands.
func Handler(c *room.Coordinator, log *zap.Logger) http.HandlerFunc {
	log = log.Named("ws")
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Debug("accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		outbox := make(chan []byte, outboxSize)

		c.Inbox() <- room.Connect{ClientID: clientID, Outbox: outbox}
		defer func() { c.Inbox() <- room.Disconnect{ClientID: clientID} }()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for frame := range outbox {
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				err := conn.Write(ctx, websocket.MessageText, frame)
				cancel()
				if err != nil {
					return
				}
			}
			// Coordinator closed the outbox; it dropped us.
			conn.Close(websocket.StatusPolicyViolation, "too slow")
		}()

		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					log.Debug("read ended", zap.String("client", clientID), zap.Error(err))
				}
				return
			}

			cmd, err := protocol.Decode(data)
			if err != nil {
				var unknown protocol.ErrUnknownEvent
				if errors.As(err, &unknown) {
					log.Debug("unknown event", zap.String("event", unknown.Event))
				} else {
					log.Debug("bad frame", zap.Error(err))
				}
				continue
			}

			c.Inbox() <- room.FromClient{ClientID: clientID, Cmd: cmd}
		}
	}
}
