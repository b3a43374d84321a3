// Package protocol defines the named events exchanged with lobby clients
// and the decoding of inbound frames into typed commands.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/stargroups/aram-lobby-backend/internal/game"
)

// Client -> server events.
const (
	EvtCreateRoom           = "create-room"
	EvtJoinRoom             = "join-room"
	EvtCheckRoom            = "check-room"
	EvtResetRoom            = "reset-room"
	EvtChangeNickname       = "change-nickname"
	EvtSelectSeat           = "select-seat"
	EvtStartGame            = "start-game"
	EvtRandomAssignTeams    = "random-assign-teams"
	EvtResetGame            = "reset-game"
	EvtRequestReroll        = "request-reroll"
	EvtSwapChampion         = "swap-champion"
	EvtBanChampion          = "ban-champion"
	EvtSelectingBanChampion = "selecting-ban-champion"
	EvtUnbanChampion        = "unban-champion"
	EvtReconnectPlayer      = "reconnect-player"
	EvtUpdatePlayerStats    = "update-player-stats"
)

// Server -> client events.
const (
	EvtGameState          = "game-state"
	EvtHostChanged        = "host-changed"
	EvtRoomStatus         = "room-status"
	EvtRoomCreated        = "room-created"
	EvtRoomReset          = "room-reset"
	EvtResetRoomError     = "reset-room-error"
	EvtNicknameChanged    = "nickname-changed"
	EvtNicknameError      = "nickname-error"
	EvtPlayerStatsUpdated = "player-stats-updated"
	EvtStartBanPhase      = "start-ban-phase"
	EvtBanConfirmed       = "ban-confirmed"
	EvtPlayerBanStatus    = "player-ban-status"
	EvtPlayerSelecting    = "player-selecting-champion"
	EvtBanPhaseComplete   = "ban-phase-complete"
	EvtStartCountdown     = "start-countdown"
	EvtCountdownFinished  = "countdown-finished"
	EvtCountdownReset     = "countdown-reset"
	EvtChampionList       = "champion-list-update"
	EvtChampionSwapped    = "champion-swapped"
	EvtRerollUpdate       = "reroll-update"
	EvtRerollBonus        = "reroll-bonus"
)

// Frame is the envelope every message travels in.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Encode marshals an outbound event once, so fan-out can reuse the bytes.
func Encode(event string, data any) ([]byte, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", event, err)
		}
		raw = b
	}
	return json.Marshal(Frame{Event: event, Data: raw})
}

// SeatHint is a client-remembered seat carried by reconnect requests.
type SeatHint struct {
	Team  game.Team `json:"team"`
	Index int       `json:"index"`
}

// Command is the closed union of inbound client commands.
type Command interface{ isCommand() }

type CreateRoom struct {
	Name  string      `json:"name"`
	Stats *game.Stats `json:"stats,omitempty"`
}

type JoinRoom struct{}

type CheckRoom struct{}

type ResetRoom struct {
	Password string `json:"password"`
}

type ChangeNickname struct {
	Nickname string `json:"nickname"`
}

type SelectSeat struct {
	Team  game.Team `json:"team"`
	Index int       `json:"index"`
}

type StartGame struct {
	Mode game.GameMode `json:"mode,omitempty"`
}

type RandomAssignTeams struct{}

type ResetGame struct {
	WinningTeam game.Team `json:"winningTeam"`
}

type RequestReroll struct{}

type SwapChampion struct {
	Champion string `json:"champion"`
}

type BanChampion struct {
	Champion string `json:"champion"`
	Auto     bool   `json:"auto,omitempty"`
}

// SelectingBanChampion carries nil when the player cancels a hover.
type SelectingBanChampion struct {
	Champion *string `json:"champion"`
}

type UnbanChampion struct {
	Champion string `json:"champion"`
}

type ReconnectPlayer struct {
	Nickname string      `json:"nickname,omitempty"`
	Stats    *game.Stats `json:"stats,omitempty"`
	Seat     *SeatHint   `json:"seat,omitempty"`
}

type UpdatePlayerStats struct {
	Stats game.Stats `json:"stats"`
}

func (CreateRoom) isCommand()           {}
func (JoinRoom) isCommand()             {}
func (CheckRoom) isCommand()            {}
func (ResetRoom) isCommand()            {}
func (ChangeNickname) isCommand()       {}
func (SelectSeat) isCommand()           {}
func (StartGame) isCommand()            {}
func (RandomAssignTeams) isCommand()    {}
func (ResetGame) isCommand()            {}
func (RequestReroll) isCommand()        {}
func (SwapChampion) isCommand()         {}
func (BanChampion) isCommand()          {}
func (SelectingBanChampion) isCommand() {}
func (UnbanChampion) isCommand()        {}
func (ReconnectPlayer) isCommand()      {}
func (UpdatePlayerStats) isCommand()    {}

// ErrUnknownEvent signals a frame whose event name has no command mapping.
type ErrUnknownEvent struct{ Event string }

func (e ErrUnknownEvent) Error() string {
	return fmt.Sprintf("unknown event %q", e.Event)
}

// Decode parses one inbound frame into its typed command.
func Decode(data []byte) (Command, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return DecodeFrame(f)
}

// DecodeFrame maps the envelope onto the command union.
func DecodeFrame(f Frame) (Command, error) {
	unmarshal := func(v any) error {
		if len(f.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(f.Data, v); err != nil {
			return fmt.Errorf("decode %s payload: %w", f.Event, err)
		}
		return nil
	}

	switch f.Event {
	case EvtCreateRoom:
		var c CreateRoom
		return c, unmarshal(&c)
	case EvtJoinRoom:
		return JoinRoom{}, nil
	case EvtCheckRoom:
		return CheckRoom{}, nil
	case EvtResetRoom:
		var c ResetRoom
		return c, unmarshal(&c)
	case EvtChangeNickname:
		var c ChangeNickname
		return c, unmarshal(&c)
	case EvtSelectSeat:
		var c SelectSeat
		return c, unmarshal(&c)
	case EvtStartGame:
		var c StartGame
		return c, unmarshal(&c)
	case EvtRandomAssignTeams:
		return RandomAssignTeams{}, nil
	case EvtResetGame:
		var c ResetGame
		return c, unmarshal(&c)
	case EvtRequestReroll:
		return RequestReroll{}, nil
	case EvtSwapChampion:
		var c SwapChampion
		return c, unmarshal(&c)
	case EvtBanChampion:
		var c BanChampion
		return c, unmarshal(&c)
	case EvtSelectingBanChampion:
		var c SelectingBanChampion
		return c, unmarshal(&c)
	case EvtUnbanChampion:
		var c UnbanChampion
		return c, unmarshal(&c)
	case EvtReconnectPlayer:
		var c ReconnectPlayer
		return c, unmarshal(&c)
	case EvtUpdatePlayerStats:
		var c UpdatePlayerStats
		return c, unmarshal(&c)
	default:
		return nil, ErrUnknownEvent{Event: f.Event}
	}
}
