package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargroups/aram-lobby-backend/internal/game"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Command
	}{
		{
			name: "create room",
			raw:  `{"event":"create-room","data":{"name":"scrims","stats":{"nickname":"Ray","win":3,"lose":1,"rerollCount":5}}}`,
			want: CreateRoom{Name: "scrims", Stats: &game.Stats{Nickname: "Ray", Wins: 3, Losses: 1, RerollCount: 5}},
		},
		{
			name: "join room without payload",
			raw:  `{"event":"join-room"}`,
			want: JoinRoom{},
		},
		{
			name: "select seat",
			raw:  `{"event":"select-seat","data":{"team":"team2","index":3}}`,
			want: SelectSeat{Team: game.TeamTwo, Index: 3},
		},
		{
			name: "start game in ban mode",
			raw:  `{"event":"start-game","data":{"mode":"ban"}}`,
			want: StartGame{Mode: game.ModeBan},
		},
		{
			name: "ban champion",
			raw:  `{"event":"ban-champion","data":{"champion":"Ahri","auto":true}}`,
			want: BanChampion{Champion: "Ahri", Auto: true},
		},
		{
			name: "hover cancelled",
			raw:  `{"event":"selecting-ban-champion","data":{"champion":null}}`,
			want: SelectingBanChampion{Champion: nil},
		},
		{
			name: "reconnect with seat hint",
			raw:  `{"event":"reconnect-player","data":{"nickname":"Ray","seat":{"team":"team1","index":2}}}`,
			want: ReconnectPlayer{Nickname: "Ray", Seat: &SeatHint{Team: game.TeamOne, Index: 2}},
		},
		{
			name: "reset game",
			raw:  `{"event":"reset-game","data":{"winningTeam":"team1"}}`,
			want: ResetGame{WinningTeam: game.TeamOne},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := Decode([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd)
		})
	}
}

func TestDecode_UnknownEvent(t *testing.T) {
	_, err := Decode([]byte(`{"event":"launch-missiles"}`))
	var unknown ErrUnknownEvent
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "launch-missiles", unknown.Event)
}

func TestDecode_BadJSON(t *testing.T) {
	_, err := Decode([]byte(`{`))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	frame, err := Encode(EvtRerollUpdate, 3)
	require.NoError(t, err)

	var f Frame
	require.NoError(t, json.Unmarshal(frame, &f))
	assert.Equal(t, EvtRerollUpdate, f.Event)
	assert.Equal(t, "3", string(f.Data))
}

func TestEncode_NilData(t *testing.T) {
	frame, err := Encode(EvtRoomCreated, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"room-created"}`, string(frame))
}
