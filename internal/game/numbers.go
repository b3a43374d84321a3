package game

import (
	"fmt"
	"regexp"
	"strconv"
)

// maxPlayerNumber bounds the auto-nickname suffix pool.
const maxPlayerNumber = 50

var autoNickname = regexp.MustCompile(`^Player(\d+)$`)

// NumberPool hands out the small integers used for default nicknames
// ("Player1", "Player2", ...). Numbers are recycled when their owner
// leaves. When every number is taken the pool falls back to 0.
type NumberPool struct {
	used map[int]bool
}

func NewNumberPool() *NumberPool {
	return &NumberPool{used: make(map[int]bool)}
}

// Next allocates the lowest free number in 1..50, or 0 if none is left.
func (p *NumberPool) Next() int {
	for n := 1; n <= maxPlayerNumber; n++ {
		if !p.used[n] {
			p.used[n] = true
			return n
		}
	}
	return 0
}

// Release returns a number to the pool.
func (p *NumberPool) Release(n int) {
	delete(p.used, n)
}

// ReleaseNickname recycles the number behind an auto-generated nickname.
// Custom nicknames never held a number, so they are ignored.
func (p *NumberPool) ReleaseNickname(nickname string) {
	m := autoNickname.FindStringSubmatch(nickname)
	if m == nil {
		return
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}
	p.Release(n)
}

// DefaultNickname builds the auto nickname for a freshly drawn number.
func DefaultNickname(n int) string {
	return fmt.Sprintf("Player%d", n)
}
