package game

import "math/rand"

// AddPlayer registers a new, unseated player in the directory.
func (s *State) AddPlayer(id, nickname string, stats Stats, isHost bool) *Player {
	p := &Player{
		ID:       id,
		Nickname: nickname,
		Team:     TeamWaiting,
		Index:    -1,
		Stats:    stats,
		IsHost:   isHost,
	}
	s.Players[id] = p
	return p
}

// Vacate frees the player's current slot, if any.
func (s *State) Vacate(p *Player) {
	if !p.Seated() {
		return
	}
	seats := s.Seats(p.Team)
	if p.Index < len(seats) && seats[p.Index] == p {
		seats[p.Index] = nil
	}
	p.Index = -1
}

// Place seats the player at an exact slot. The slot must be free and the
// player must not hold another seat.
func (s *State) Place(p *Player, t Team, index int) error {
	if !ValidTeam(t) || index < 0 || index >= SeatCount(t) {
		return ErrInvalidSeat
	}
	if s.Seats(t)[index] != nil {
		return ErrSeatTaken
	}
	s.Vacate(p)
	s.Seats(t)[index] = p
	p.Team = t
	p.Index = index
	return nil
}

// SeatInWaiting puts the player into the first free waiting slot. With a
// full waiting room the player stays unseated.
func (s *State) SeatInWaiting(p *Player) {
	s.Vacate(p)
	p.Team = TeamWaiting
	for i, slot := range s.Waiting {
		if slot == nil {
			s.Waiting[i] = p
			p.Index = i
			return
		}
	}
	p.Index = -1
}

// SelectSeat moves the caller to a chosen slot. A taken slot is a silent
// no-op: the caller keeps the seat it had.
func (s *State) SelectSeat(playerID string, t Team, index int) error {
	p, ok := s.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	if err := s.Place(p, t, index); err != nil {
		return err
	}
	p.JustMoved = true
	return nil
}

// RemovePlayer drops the player from the directory, vacates its seat and
// recycles its auto-nickname number.
func (s *State) RemovePlayer(id string) {
	p, ok := s.Players[id]
	if !ok {
		return
	}
	s.Numbers.ReleaseNickname(p.Nickname)
	s.Vacate(p)
	delete(s.Players, id)
	if s.BanStatus != nil {
		delete(s.BanStatus, id)
	}
}

// RandomAssignTeams shuffles everyone in the waiting room onto the two
// teams: the first min(5, n/2) onto team1, the next min(5, n-|team1|)
// onto team2. The waiting room is cleared regardless.
func (s *State) RandomAssignTeams() {
	waiting := make([]*Player, 0, WaitingSize)
	for _, p := range s.Waiting {
		if p != nil {
			waiting = append(waiting, p)
		}
	}
	if len(waiting) == 0 {
		return
	}

	s.TeamOne = make([]*Player, TeamSize)
	s.TeamTwo = make([]*Player, TeamSize)

	rand.Shuffle(len(waiting), func(i, j int) {
		waiting[i], waiting[j] = waiting[j], waiting[i]
	})

	oneCount := min(TeamSize, len(waiting)/2)
	twoCount := min(TeamSize, len(waiting)-oneCount)

	for i := 0; i < oneCount; i++ {
		p := waiting[i]
		s.TeamOne[i] = p
		p.Team = TeamOne
		p.Index = i
	}
	for i := 0; i < twoCount; i++ {
		p := waiting[oneCount+i]
		s.TeamTwo[i] = p
		p.Team = TeamTwo
		p.Index = i
	}
	// Cannot happen with a 10-slot waiting room, but never leave a stale
	// index behind.
	for i := oneCount + twoCount; i < len(waiting); i++ {
		waiting[i].Team = TeamWaiting
		waiting[i].Index = -1
	}

	s.Waiting = make([]*Player, WaitingSize)
}
