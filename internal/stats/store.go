// Package stats persists per-player statistics records. The lobby core
// treats the record as opaque: it mutates win/lose/reroll counters and
// hands the record here for durable storage keyed by nickname.
package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stargroups/aram-lobby-backend/internal/game"
)

var ErrNotFound = errors.New("stats: record not found")

type Store interface {
	Upsert(ctx context.Context, s game.Stats) error
	Get(ctx context.Context, nickname string) (game.Stats, error)
}

// PlayerStats is the persisted row behind one nickname.
type PlayerStats struct {
	ID          uint   `gorm:"primaryKey"`
	Nickname    string `gorm:"size:64;uniqueIndex;not null"`
	Wins        int    `gorm:"not null;default:0"`
	Losses      int    `gorm:"not null;default:0"`
	RerollCount int    `gorm:"not null;default:2"`
	UpdatedAt   time.Time
}

// DBStore keeps records in Postgres through gorm.
type DBStore struct {
	db *gorm.DB
}

// Open connects to the database and migrates the stats table.
func Open(dsn string) (*DBStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("stats: open database: %w", err)
	}
	if err := db.AutoMigrate(&PlayerStats{}); err != nil {
		return nil, fmt.Errorf("stats: migrate: %w", err)
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Upsert(ctx context.Context, rec game.Stats) error {
	row := PlayerStats{
		Nickname:    rec.Nickname,
		Wins:        rec.Wins,
		Losses:      rec.Losses,
		RerollCount: rec.RerollCount,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nickname"}},
		DoUpdates: clause.AssignmentColumns([]string{"wins", "losses", "reroll_count", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("stats: upsert %s: %w", rec.Nickname, err)
	}
	return nil
}

func (s *DBStore) Get(ctx context.Context, nickname string) (game.Stats, error) {
	var row PlayerStats
	err := s.db.WithContext(ctx).Where("nickname = ?", nickname).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return game.Stats{}, ErrNotFound
	}
	if err != nil {
		return game.Stats{}, fmt.Errorf("stats: get %s: %w", nickname, err)
	}
	return game.Stats{
		Nickname:    row.Nickname,
		Wins:        row.Wins,
		Losses:      row.Losses,
		RerollCount: row.RerollCount,
	}, nil
}

// MemoryStore backs deployments without a database, and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]game.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]game.Stats)}
}

func (s *MemoryStore) Upsert(_ context.Context, rec game.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Nickname] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, nickname string) (game.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[nickname]
	if !ok {
		return game.Stats{}, ErrNotFound
	}
	return rec, nil
}
