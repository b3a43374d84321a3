package game

// BeginBanPhase moves the room into the ban phase and creates a BanStatus
// record for every seated team player.
func (s *State) BeginBanPhase() {
	s.Phase = PhaseBan
	s.BanStatus = make(map[string]*BanStatus)
	for _, t := range []Team{TeamOne, TeamTwo} {
		for _, p := range s.Seats(t) {
			if p == nil {
				continue
			}
			s.BanStatus[p.ID] = &BanStatus{
				Nickname: p.Nickname,
				Team:     p.Team,
			}
		}
	}
}

// TeamBans lists the champions already locked in by a team's ban
// submissions during the current ban phase.
func (s *State) TeamBans(t Team) []string {
	var bans []string
	for _, st := range s.BanStatus {
		if st.Team == t && st.Champion != "" {
			bans = append(bans, st.Champion)
		}
	}
	return bans
}

// SubmitBan records a player's ban choice. A champion a teammate already
// banned is rejected with ErrTeamAlreadyBan; automated callers handle that
// by redrawing.
func (s *State) SubmitBan(playerID, champion string) error {
	if s.Phase != PhaseBan {
		return ErrWrongPhase
	}
	p, ok := s.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	if !p.OnTeam() {
		return ErrNotOnTeam
	}
	st, ok := s.BanStatus[playerID]
	if !ok {
		return ErrNotOnTeam
	}
	if st.Complete {
		return ErrAlreadyCompleted
	}
	if !KnownChampion(champion) {
		return ErrUnknownChampion
	}
	for _, banned := range s.TeamBans(p.Team) {
		if banned == champion {
			return ErrTeamAlreadyBan
		}
	}
	st.Champion = champion
	st.Complete = true
	return nil
}

// DrawTeamBan picks a random champion the team has not banned yet.
func (s *State) DrawTeamBan(t Team) (string, bool) {
	exclude := make(map[string]bool)
	for _, c := range s.TeamBans(t) {
		exclude[c] = true
	}
	return DrawChampion(exclude)
}

// AllBansComplete reports whether every ban-phase participant has locked
// in a champion.
func (s *State) AllBansComplete() bool {
	for _, st := range s.BanStatus {
		if !st.Complete {
			return false
		}
	}
	return true
}

// AutoBan is one auto-completed submission produced on timeout.
type AutoBan struct {
	PlayerID string
	Champion string
	Team     Team
}

// AutoCompleteBans draws a champion for every player that has not banned
// yet, excluding the team's existing bans as they accumulate.
func (s *State) AutoCompleteBans() []AutoBan {
	var picks []AutoBan
	for id, st := range s.BanStatus {
		if st.Complete {
			continue
		}
		champion, ok := s.DrawTeamBan(st.Team)
		if !ok {
			continue
		}
		st.Champion = champion
		st.Complete = true
		picks = append(picks, AutoBan{PlayerID: id, Champion: champion, Team: st.Team})
	}
	return picks
}

// BanSummary aggregates the ban phase into per-team and combined lists.
type BanSummary struct {
	TeamOneBans []string `json:"team1Bans"`
	TeamTwoBans []string `json:"team2Bans"`
	AllBans     []string `json:"allBannedChampions"`
}

// FinalizeBans folds every BanStatus champion into the global ban list,
// clears the BanStatus map and moves the room to the play phase.
func (s *State) FinalizeBans() BanSummary {
	summary := BanSummary{
		TeamOneBans: []string{},
		TeamTwoBans: []string{},
		AllBans:     []string{},
	}
	for _, st := range s.BanStatus {
		if st.Champion == "" {
			continue
		}
		summary.AllBans = append(summary.AllBans, st.Champion)
		switch st.Team {
		case TeamOne:
			summary.TeamOneBans = append(summary.TeamOneBans, st.Champion)
		case TeamTwo:
			summary.TeamTwoBans = append(summary.TeamTwoBans, st.Champion)
		}
	}
	s.Banned = summary.AllBans
	s.BanStatus = nil
	s.Phase = PhasePlay
	return summary
}

// SetSelecting updates the champion a ban-phase participant is hovering.
func (s *State) SetSelecting(playerID, champion string) error {
	if s.Phase != PhaseBan {
		return ErrWrongPhase
	}
	p, ok := s.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	if !p.OnTeam() {
		return ErrNotOnTeam
	}
	st, ok := s.BanStatus[playerID]
	if !ok {
		return ErrNotOnTeam
	}
	if st.Complete {
		return ErrAlreadyCompleted
	}
	st.Selecting = champion
	return nil
}

// Unban removes one champion from the global ban list. Only legal before
// any seated team player holds a champion.
func (s *State) Unban(champion string) error {
	if s.AnyTeamChampion() {
		return ErrWrongPhase
	}
	for i, c := range s.Banned {
		if c == champion {
			s.Banned = append(s.Banned[:i], s.Banned[i+1:]...)
			return nil
		}
	}
	return ErrUnknownChampion
}
