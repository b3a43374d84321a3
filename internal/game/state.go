package game

import "errors"

var (
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrSeatTaken        = errors.New("seat taken")
	ErrInvalidSeat      = errors.New("invalid seat")
	ErrNicknameTooLong  = errors.New("nickname must be under 10 characters")
	ErrNicknameTaken    = errors.New("nickname already in use")
	ErrWrongPhase       = errors.New("wrong phase")
	ErrNotOnTeam        = errors.New("player is not on a team")
	ErrAlreadyCompleted = errors.New("ban already completed")
	ErrUnknownChampion  = errors.New("unknown champion")
	ErrTeamAlreadyBan   = errors.New("champion already banned by team")
	ErrNoBudget         = errors.New("no rerolls left")
	ErrNoChampion       = errors.New("no champion assigned")
	ErrNotInDiscards    = errors.New("champion not in team discards")
	ErrPoolExhausted    = errors.New("champion pool exhausted")
)

type Team string

const (
	TeamOne     Team = "team1"
	TeamTwo     Team = "team2"
	TeamWaiting Team = "waiting"
)

const (
	TeamSize    = 5
	WaitingSize = 10
	MaxPlayers  = 10
)

// ValidTeam reports whether t names a real seat group.
func ValidTeam(t Team) bool {
	return t == TeamOne || t == TeamTwo || t == TeamWaiting
}

// SeatCount is the number of slots in a seat group.
func SeatCount(t Team) int {
	if t == TeamWaiting {
		return WaitingSize
	}
	return TeamSize
}

type GameMode string

const (
	ModeNormal GameMode = "normal"
	ModeBan    GameMode = "ban"
)

type GamePhase string

const (
	PhaseIdle GamePhase = "idle"
	PhaseBan  GamePhase = "ban"
	PhasePlay GamePhase = "play"
)

// Stats is the per-player statistics record. It is owned by the player's
// external profile; the lobby reads it, mutates it through reroll/reward
// rules and hands it back for persistence.
type Stats struct {
	Nickname    string `json:"nickname,omitempty"`
	Wins        int    `json:"win"`
	Losses      int    `json:"lose"`
	RerollCount int    `json:"rerollCount"`
}

// DefaultStats is the record a brand-new player starts with.
func DefaultStats(nickname string) Stats {
	return Stats{Nickname: nickname, RerollCount: 2}
}

// Player is one participant of the room. Seat location is tracked both
// here (Team/Index) and in the seat arrays; the two must agree.
type Player struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Team      Team   `json:"team"`
	Index     int    `json:"index"`
	Champion  string `json:"champion,omitempty"`
	Stats     Stats  `json:"stats"`
	IsHost    bool   `json:"isHost"`
	JustMoved bool   `json:"justMoved,omitempty"`
}

// Seated reports whether the player currently occupies a slot.
func (p *Player) Seated() bool { return p.Index >= 0 }

// OnTeam reports whether the player sits on team1 or team2.
func (p *Player) OnTeam() bool {
	return p.Seated() && (p.Team == TeamOne || p.Team == TeamTwo)
}

// BanStatus tracks one team player's progress through the ban phase.
type BanStatus struct {
	Nickname string `json:"nickname"`
	Team     Team   `json:"team"`
	Complete bool   `json:"completed"`
	Champion string `json:"champion,omitempty"`
	// Selecting is the champion the player is hovering, shown live to
	// spectators. Purely presentational.
	Selecting string `json:"selectingChampion,omitempty"`
}

// State is the mutable seat/player/phase aggregate of a room. It must only
// ever be touched from the coordinator goroutine that owns the room.
type State struct {
	TeamOne []*Player          `json:"team1"`
	TeamTwo []*Player          `json:"team2"`
	Waiting []*Player          `json:"waiting"`
	Players map[string]*Player `json:"players"`
	HostID  string             `json:"host"`

	// Champions displaced by rerolls and swaps, available to swap back.
	TeamOneDiscards []string `json:"team1Champions"`
	TeamTwoDiscards []string `json:"team2Champions"`

	Banned []string `json:"bannedChampions"`

	Mode  GameMode  `json:"mode"`
	Phase GamePhase `json:"phase"`

	// Only populated while Phase == PhaseBan.
	BanStatus map[string]*BanStatus `json:"playerBanStatus,omitempty"`

	Numbers *NumberPool `json:"-"`
}

func NewState(hostID string) *State {
	return &State{
		TeamOne:         make([]*Player, TeamSize),
		TeamTwo:         make([]*Player, TeamSize),
		Waiting:         make([]*Player, WaitingSize),
		Players:         make(map[string]*Player),
		HostID:          hostID,
		TeamOneDiscards: []string{},
		TeamTwoDiscards: []string{},
		Banned:          []string{},
		Mode:            ModeNormal,
		Phase:           PhaseIdle,
		Numbers:         NewNumberPool(),
	}
}

// Seats returns the slot slice backing a seat group.
func (s *State) Seats(t Team) []*Player {
	switch t {
	case TeamOne:
		return s.TeamOne
	case TeamTwo:
		return s.TeamTwo
	default:
		return s.Waiting
	}
}

// Discards returns the discard list of a team; the waiting group has none.
func (s *State) Discards(t Team) []string {
	switch t {
	case TeamOne:
		return s.TeamOneDiscards
	case TeamTwo:
		return s.TeamTwoDiscards
	default:
		return nil
	}
}

func (s *State) setDiscards(t Team, list []string) {
	switch t {
	case TeamOne:
		s.TeamOneDiscards = list
	case TeamTwo:
		s.TeamTwoDiscards = list
	}
}

// NicknameTaken reports whether any player other than exceptID already
// uses nickname.
func (s *State) NicknameTaken(nickname, exceptID string) bool {
	for id, p := range s.Players {
		if id != exceptID && p.Nickname == nickname {
			return true
		}
	}
	return false
}

// FindByNickname returns the player currently holding nickname.
func (s *State) FindByNickname(nickname string) *Player {
	for _, p := range s.Players {
		if p.Nickname == nickname {
			return p
		}
	}
	return nil
}

// AnyTeamChampion reports whether any seated team player already holds a
// champion, i.e. a round is effectively underway.
func (s *State) AnyTeamChampion() bool {
	for _, p := range s.TeamOne {
		if p != nil && p.Champion != "" {
			return true
		}
	}
	for _, p := range s.TeamTwo {
		if p != nil && p.Champion != "" {
			return true
		}
	}
	return false
}
