package protocol

import "github.com/stargroups/aram-lobby-backend/internal/game"

// Outbound payload shapes that are not plain state snapshots.

type ErrorPayload struct {
	Message string `json:"message"`
}

type NicknamePayload struct {
	Name string `json:"name"`
}

type StartBanPhasePayload struct {
	Players map[string]*game.BanStatus `json:"players"`
	State   SeatSnapshot               `json:"state"`
}

// SeatSnapshot is the seat layout sent alongside the ban-phase kickoff.
type SeatSnapshot struct {
	TeamOne []*game.Player `json:"team1"`
	TeamTwo []*game.Player `json:"team2"`
	Waiting []*game.Player `json:"waiting"`
}

type BanConfirmedPayload struct {
	PlayerID string    `json:"playerId"`
	Champion string    `json:"champion"`
	Team     game.Team `json:"team"`
	Auto     bool      `json:"auto,omitempty"`
}

type PlayerSelectingPayload struct {
	PlayerID string  `json:"playerId"`
	Champion *string `json:"champion"`
}

type ChampionSwappedPayload struct {
	OldChampion string `json:"oldChampion"`
	NewChampion string `json:"newChampion"`
}

type RerollBonusPayload struct {
	Message  string `json:"message"`
	NewCount int    `json:"newCount"`
}
