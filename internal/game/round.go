package game

// AssignChampions deals a champion to every seated player, group by
// group, rebuilding the exclusion set after each deal so teammates never
// collide. An exhausted pool leaves the player championless.
func (s *State) AssignChampions() {
	s.Phase = PhasePlay
	for _, t := range []Team{TeamOne, TeamTwo, TeamWaiting} {
		for _, p := range s.Seats(t) {
			if p == nil {
				continue
			}
			champion, ok := DrawChampion(s.TeamExclusions(t))
			if !ok {
				p.Champion = ""
				continue
			}
			p.Champion = champion
		}
	}
}

// RerollResult reports what a successful reroll changed.
type RerollResult struct {
	Champion  string
	Remaining int
	Team      Team
	Discards  []string
}

// Reroll redraws the caller's champion, spending one reroll. The previous
// champion lands in the team's discard list where teammates can swap for
// it.
func (s *State) Reroll(playerID string) (RerollResult, error) {
	p, ok := s.Players[playerID]
	if !ok {
		return RerollResult{}, ErrUnknownPlayer
	}
	if p.Stats.RerollCount <= 0 {
		return RerollResult{}, ErrNoBudget
	}

	exclude := s.TeamExclusions(p.Team)
	if p.Team == TeamWaiting {
		for _, c := range s.Banned {
			exclude[c] = true
		}
	}
	champion, ok := DrawChampion(exclude)
	if !ok {
		return RerollResult{}, ErrPoolExhausted
	}

	if p.Champion != "" && p.Team != TeamWaiting {
		s.setDiscards(p.Team, append(s.Discards(p.Team), p.Champion))
	}
	p.Champion = champion
	p.Stats.RerollCount--

	return RerollResult{
		Champion:  champion,
		Remaining: p.Stats.RerollCount,
		Team:      p.Team,
		Discards:  s.Discards(p.Team),
	}, nil
}

// SwapResult reports a completed swap.
type SwapResult struct {
	OldChampion string
	NewChampion string
	Team        Team
	Discards    []string
}

// Swap exchanges the caller's champion with one from the team's discard
// list, in place. Costs nothing.
func (s *State) Swap(playerID, target string) (SwapResult, error) {
	p, ok := s.Players[playerID]
	if !ok {
		return SwapResult{}, ErrUnknownPlayer
	}
	if p.Champion == "" {
		return SwapResult{}, ErrNoChampion
	}
	discards := s.Discards(p.Team)
	for i, c := range discards {
		if c == target {
			old := p.Champion
			p.Champion = target
			discards[i] = old
			return SwapResult{
				OldChampion: old,
				NewChampion: target,
				Team:        p.Team,
				Discards:    discards,
			}, nil
		}
	}
	return SwapResult{}, ErrNotInDiscards
}

// Reward is the stat adjustment applied to one player at round end.
type Reward struct {
	PlayerID string
	Won      bool
	Stats    Stats
}

// FinishRound applies win/lose rewards to every seated team player, wipes
// champions, discards, bans and any leftover ban state, and reseats every
// known player into the waiting room. Winners earn +1 win and +1 reroll;
// losers +1 loss and +2 rerolls.
//
// order fixes the reseat sequence (connection order); players beyond the
// waiting capacity stay unseated.
func (s *State) FinishRound(winningTeam Team, order []string) []Reward {
	var rewards []Reward
	for _, p := range s.Players {
		p.Champion = ""
		if p.Team == TeamWaiting {
			continue
		}
		if p.Team == winningTeam {
			p.Stats.Wins++
			p.Stats.RerollCount++
			rewards = append(rewards, Reward{PlayerID: p.ID, Won: true, Stats: p.Stats})
		} else {
			p.Stats.Losses++
			p.Stats.RerollCount += 2
			rewards = append(rewards, Reward{PlayerID: p.ID, Won: false, Stats: p.Stats})
		}
	}

	s.TeamOneDiscards = []string{}
	s.TeamTwoDiscards = []string{}
	s.Banned = []string{}
	s.BanStatus = nil
	s.Phase = PhaseIdle

	s.TeamOne = make([]*Player, TeamSize)
	s.TeamTwo = make([]*Player, TeamSize)
	s.Waiting = make([]*Player, WaitingSize)

	seat := 0
	for _, id := range order {
		p, ok := s.Players[id]
		if !ok {
			continue
		}
		p.Team = TeamWaiting
		p.Index = -1
		if seat < WaitingSize {
			s.Waiting[seat] = p
			p.Index = seat
			seat++
		}
	}
	return rewards
}
