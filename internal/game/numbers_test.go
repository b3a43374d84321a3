package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberPool_AllocatesLowestFree(t *testing.T) {
	p := NewNumberPool()
	assert.Equal(t, 1, p.Next())
	assert.Equal(t, 2, p.Next())
	assert.Equal(t, 3, p.Next())

	p.Release(2)
	assert.Equal(t, 2, p.Next(), "recycled number should come back first")
}

func TestNumberPool_ExhaustionFallsBackToZero(t *testing.T) {
	p := NewNumberPool()
	for i := 1; i <= maxPlayerNumber; i++ {
		p.Next()
	}
	assert.Equal(t, 0, p.Next())
}

func TestNumberPool_ReleaseNickname(t *testing.T) {
	cases := []struct {
		name     string
		nickname string
		released bool
	}{
		{"auto nickname", "Player7", true},
		{"custom nickname", "Faker", false},
		{"auto-looking with suffix", "Player7x", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewNumberPool()
			for i := 1; i <= 7; i++ {
				p.Next()
			}
			p.ReleaseNickname(tc.nickname)
			if tc.released {
				assert.Equal(t, 7, p.Next())
			} else {
				assert.Equal(t, 8, p.Next())
			}
		})
	}
}
