package game

import "math/rand"

// DrawChampion picks a uniformly random champion outside the exclusion
// set. ok is false when the pool is exhausted; callers then leave the
// champion unassigned rather than failing.
func DrawChampion(exclude map[string]bool) (champion string, ok bool) {
	available := make([]string, 0, len(Champions))
	for _, c := range Champions {
		if !exclude[c] {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return "", false
	}
	return available[rand.Intn(len(available))], true
}

// TeamExclusions builds the draw exclusion set for a team seat group:
// champions already held by seated teammates, the team's discard list and
// the global ban list. For the waiting group only the held champions
// count.
func (s *State) TeamExclusions(t Team) map[string]bool {
	exclude := make(map[string]bool)
	for _, p := range s.Seats(t) {
		if p != nil && p.Champion != "" {
			exclude[p.Champion] = true
		}
	}
	if t == TeamWaiting {
		return exclude
	}
	for _, c := range s.Discards(t) {
		exclude[c] = true
	}
	for _, c := range s.Banned {
		exclude[c] = true
	}
	return exclude
}
