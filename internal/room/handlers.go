package room

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/game"
	"github.com/stargroups/aram-lobby-backend/internal/protocol"
)

func (c *Coordinator) handleCreateRoom(clientID string, cmd protocol.CreateRoom) {
	if c.room != nil {
		// Somebody beat them to it; point the client at the existing room.
		c.send(clientID, protocol.EvtRoomStatus, true)
		return
	}

	state := game.NewState(clientID)
	number := state.Numbers.Next()

	nickname := game.DefaultNickname(number)
	playerStats := game.DefaultStats(nickname)
	if cmd.Stats != nil {
		playerStats = *cmd.Stats
		if playerStats.Nickname != "" {
			nickname = playerStats.Nickname
		}
		playerStats.Nickname = nickname
	}

	host := state.AddPlayer(clientID, nickname, playerStats, true)
	_ = state.Place(host, game.TeamWaiting, 0)

	c.room = &liveRoom{
		ID:      newRoomID(),
		Name:    cmd.Name,
		Members: []string{clientID},
		State:   state,
	}
	c.log.Info("room created",
		zap.String("room", c.room.ID),
		zap.String("name", cmd.Name),
		zap.String("host", nickname))

	c.broadcastState()
	c.send(clientID, protocol.EvtHostChanged, true)
	c.send(clientID, protocol.EvtPlayerStatsUpdated, playerStats)
	c.send(clientID, protocol.EvtRoomCreated, nil)
	c.persistStats(playerStats)
}

func (c *Coordinator) handleJoinRoom(clientID string) {
	r := c.room
	if r == nil || len(r.Members) >= game.MaxPlayers {
		return
	}

	if _, ok := r.State.Players[clientID]; ok {
		// Already known; just re-attach and resend state.
		if !r.hasMember(clientID) {
			r.Members = append(r.Members, clientID)
		}
		c.send(clientID, protocol.EvtGameState, r.State)
		return
	}

	number := r.State.Numbers.Next()
	nickname := game.DefaultNickname(number)
	p := r.State.AddPlayer(clientID, nickname, game.DefaultStats(nickname), clientID == r.State.HostID)
	r.State.SeatInWaiting(p)
	r.Members = append(r.Members, clientID)

	c.log.Info("player joined", zap.String("player", nickname))
	c.broadcastState()
}

func (c *Coordinator) handleResetRoom(clientID, password string) {
	if password != c.opts.ResetPassword {
		c.send(clientID, protocol.EvtResetRoomError, protocol.ErrorPayload{Message: "wrong password"})
		return
	}
	if c.room == nil {
		c.send(clientID, protocol.EvtResetRoomError, protocol.ErrorPayload{Message: "no room to reset"})
		return
	}

	c.log.Warn("room reset", zap.String("room", c.room.ID))
	c.stopBanTimer()
	c.room = nil
	c.broadcastAll(protocol.EvtRoomReset, nil)
}

func (c *Coordinator) handleChangeNickname(clientID, nickname string) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	if utf8.RuneCountInString(nickname) >= 10 {
		c.send(clientID, protocol.EvtNicknameError, protocol.ErrorPayload{Message: "nickname must be under 10 characters"})
		return
	}
	if r.State.NicknameTaken(nickname, clientID) {
		c.send(clientID, protocol.EvtNicknameError, protocol.ErrorPayload{Message: "nickname already in use"})
		return
	}
	p, ok := r.State.Players[clientID]
	if !ok {
		return
	}

	p.Nickname = nickname
	p.Stats.Nickname = nickname
	c.send(clientID, protocol.EvtNicknameChanged, protocol.NicknamePayload{Name: nickname})
	c.persistStats(p.Stats)
	c.broadcastState()
}

func (c *Coordinator) handleDisconnect(clientID string) {
	if ch, ok := c.conns[clientID]; ok {
		close(ch)
		delete(c.conns, clientID)
	}

	r := c.memberRoom(clientID)
	if r == nil {
		return
	}

	members := r.Members[:0]
	for _, id := range r.Members {
		if id != clientID {
			members = append(members, id)
		}
	}
	r.Members = members

	if clientID == r.State.HostID && len(r.Members) > 0 {
		r.State.HostID = r.Members[0]
		for _, p := range r.State.Players {
			p.IsHost = p.ID == r.State.HostID
		}
		c.send(r.Members[0], protocol.EvtHostChanged, true)
		c.log.Info("host promoted", zap.String("host", r.Members[0]))
	}

	r.State.RemovePlayer(clientID)

	if len(r.Members) == 0 {
		c.log.Info("room emptied", zap.String("room", r.ID))
		c.stopBanTimer()
		c.room = nil
		return
	}
	c.broadcastState()
}

func (c *Coordinator) handleSelectSeat(clientID string, team game.Team, index int) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	if err := r.State.SelectSeat(clientID, team, index); err != nil {
		c.log.Debug("seat rejected", zap.String("client", clientID), zap.Error(err))
		return
	}

	// The flag only drives a client-side animation; clear it off-screen.
	time.AfterFunc(c.opts.MoveFlagTTL, func() {
		select {
		case c.inbox <- moveFlagExpired{playerID: clientID}:
		case <-c.ctx.Done():
		}
	})
	c.broadcastState()
}

func (c *Coordinator) handleStartGame(clientID string, mode game.GameMode) {
	r := c.memberRoom(clientID)
	if r == nil || clientID != r.State.HostID {
		return
	}
	for _, p := range r.State.Waiting {
		if p != nil {
			// Everyone has to be on a team first.
			return
		}
	}

	if mode == "" {
		mode = game.ModeNormal
	}
	r.State.Mode = mode

	if mode == game.ModeBan {
		c.startBanPhase(r)
		return
	}
	c.startPlay(r)
}

func (c *Coordinator) startBanPhase(r *liveRoom) {
	r.State.BeginBanPhase()
	c.log.Info("ban phase started", zap.Int("players", len(r.State.BanStatus)))

	c.broadcastRoom(protocol.EvtStartBanPhase, protocol.StartBanPhasePayload{
		Players: r.State.BanStatus,
		State: protocol.SeatSnapshot{
			TeamOne: r.State.TeamOne,
			TeamTwo: r.State.TeamTwo,
			Waiting: r.State.Waiting,
		},
	})

	r.banGen++
	gen := r.banGen
	r.banTimer = time.AfterFunc(c.opts.BanTimeout, func() {
		select {
		case c.inbox <- banExpired{gen: gen}:
		case <-c.ctx.Done():
		}
	})
}

func (c *Coordinator) handleBanExpired(gen int) {
	r := c.room
	if r == nil || r.State.Phase != game.PhaseBan || gen != r.banGen {
		// Stale fire; the phase already finalized.
		return
	}
	picks := r.State.AutoCompleteBans()
	for _, pick := range picks {
		c.log.Info("auto ban",
			zap.String("player", pick.PlayerID),
			zap.String("champion", pick.Champion))
		c.broadcastRoom(protocol.EvtBanConfirmed, protocol.BanConfirmedPayload{
			PlayerID: pick.PlayerID,
			Champion: pick.Champion,
			Team:     pick.Team,
			Auto:     true,
		})
	}
	c.completeBanPhase(r)
}

// completeBanPhase finalizes the ban phase exactly once; both the timeout
// path and the everyone-submitted path land here.
func (c *Coordinator) completeBanPhase(r *liveRoom) {
	if r.State.Phase != game.PhaseBan {
		return
	}
	c.stopBanTimer()

	summary := r.State.FinalizeBans()
	c.log.Info("ban phase complete", zap.Strings("bans", summary.AllBans))
	c.broadcastRoom(protocol.EvtBanPhaseComplete, summary)
	c.startPlay(r)
}

func (c *Coordinator) stopBanTimer() {
	if c.room == nil {
		return
	}
	if c.room.banTimer != nil {
		c.room.banTimer.Stop()
		c.room.banTimer = nil
	}
	c.room.banGen++
}

func (c *Coordinator) startPlay(r *liveRoom) {
	r.State.AssignChampions()

	seconds := int(c.opts.Countdown / time.Second)
	c.broadcastRoom(protocol.EvtStartCountdown, seconds)
	time.AfterFunc(c.opts.Countdown, func() {
		select {
		case c.inbox <- countdownElapsed{}:
		case <-c.ctx.Done():
		}
	})

	c.broadcastState()
}

func (c *Coordinator) handleBanChampion(clientID, champion string, auto bool) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	p, ok := r.State.Players[clientID]
	if !ok {
		return
	}

	err := r.State.SubmitBan(clientID, champion)
	switch {
	case err == nil:
		c.broadcastRoom(protocol.EvtPlayerBanStatus, r.State.BanStatus)
		c.broadcastRoom(protocol.EvtBanConfirmed, protocol.BanConfirmedPayload{
			PlayerID: clientID,
			Champion: champion,
			Team:     p.Team,
			Auto:     auto,
		})

	case errors.Is(err, game.ErrTeamAlreadyBan) && auto:
		// Automated pick collided with a teammate's ban; redraw silently.
		redraw, ok := r.State.DrawTeamBan(p.Team)
		if !ok {
			return
		}
		st := r.State.BanStatus[clientID]
		st.Champion = redraw
		st.Complete = true
		c.broadcastRoom(protocol.EvtBanConfirmed, protocol.BanConfirmedPayload{
			PlayerID: clientID,
			Champion: redraw,
			Team:     p.Team,
			Auto:     true,
		})

	default:
		c.log.Debug("ban rejected", zap.String("client", clientID), zap.Error(err))
		return
	}

	if r.State.AllBansComplete() {
		c.completeBanPhase(r)
	}
}

func (c *Coordinator) handleSelecting(clientID string, champion *string) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	var name string
	if champion != nil {
		name = *champion
	}
	if err := r.State.SetSelecting(clientID, name); err != nil {
		return
	}
	c.broadcastRoom(protocol.EvtPlayerSelecting, protocol.PlayerSelectingPayload{
		PlayerID: clientID,
		Champion: champion,
	})
}

func (c *Coordinator) handleUnban(clientID, champion string) {
	r := c.memberRoom(clientID)
	if r == nil || clientID != r.State.HostID {
		return
	}
	if err := r.State.Unban(champion); err != nil {
		c.log.Debug("unban rejected", zap.Error(err))
		return
	}
	c.broadcastState()
}

func (c *Coordinator) handleRandomAssignTeams(clientID string) {
	r := c.memberRoom(clientID)
	if r == nil || clientID != r.State.HostID {
		return
	}
	r.State.RandomAssignTeams()
	c.broadcastState()
}

func (c *Coordinator) handleResetGame(clientID string, winningTeam game.Team) {
	r := c.memberRoom(clientID)
	if r == nil || clientID != r.State.HostID {
		return
	}

	c.stopBanTimer()
	rewards := r.State.FinishRound(winningTeam, r.Members)
	for _, reward := range rewards {
		payload := protocol.RerollBonusPayload{
			Message:  "defeat bonus: +2 rerolls",
			NewCount: reward.Stats.RerollCount,
		}
		if reward.Won {
			payload.Message = "victory bonus: +1 reroll"
		}
		c.send(reward.PlayerID, protocol.EvtRerollBonus, payload)
		c.persistStats(reward.Stats)
	}

	c.log.Info("round finished", zap.String("winner", string(winningTeam)))
	c.broadcastRoom(protocol.EvtCountdownReset, nil)
	c.broadcastRoom(protocol.EvtChampionList, []string{})
	c.broadcastState()
}

func (c *Coordinator) handleReroll(clientID string) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	res, err := r.State.Reroll(clientID)
	if err != nil {
		c.log.Debug("reroll rejected", zap.String("client", clientID), zap.Error(err))
		return
	}

	c.send(clientID, protocol.EvtRerollUpdate, res.Remaining)
	c.broadcastTeam(res.Team, protocol.EvtChampionList, res.Discards)
	if p, ok := r.State.Players[clientID]; ok {
		c.persistStats(p.Stats)
	}
	c.broadcastState()
}

func (c *Coordinator) handleSwap(clientID, target string) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	res, err := r.State.Swap(clientID, target)
	if err != nil {
		c.log.Debug("swap rejected", zap.String("client", clientID), zap.Error(err))
		return
	}

	c.send(clientID, protocol.EvtChampionSwapped, protocol.ChampionSwappedPayload{
		OldChampion: res.OldChampion,
		NewChampion: res.NewChampion,
	})
	c.broadcastTeam(res.Team, protocol.EvtChampionList, res.Discards)
	c.broadcastState()
}

func (c *Coordinator) handleUpdateStats(clientID string, incoming game.Stats) {
	r := c.memberRoom(clientID)
	if r == nil {
		return
	}
	p, ok := r.State.Players[clientID]
	if !ok {
		return
	}

	// The nickname stays server-authoritative.
	incoming.Nickname = p.Nickname
	p.Stats = incoming
	c.persistStats(p.Stats)
	c.send(clientID, protocol.EvtPlayerStatsUpdated, p.Stats)
	c.broadcastState()
}

// persistStats hands the record to the external stats store without
// blocking the actor loop.
func (c *Coordinator) persistStats(s game.Stats) {
	if c.store == nil || s.Nickname == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.store.Upsert(ctx, s); err != nil {
			c.log.Warn("persist stats", zap.String("nickname", s.Nickname), zap.Error(err))
		}
	}()
}
