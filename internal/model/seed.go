package model

import (
	"time"

	"github.com/google/uuid"
)

// SeedSource tells which user signal produced the seed.
type SeedSource string

const (
	SeedFavorite  SeedSource = "favorite"
	SeedWatchlist SeedSource = "watchlist"
)

func (s SeedSource) Valid() bool {
	return s == SeedFavorite || s == SeedWatchlist
}

// Seed is a title the user has signaled interest in. Never mutated;
// removed only when the underlying favorite/watchlist entry is removed.
type Seed struct {
	UserID    uuid.UUID
	TitleID   int64
	Kind      MediaKind
	Source    SeedSource
	CreatedAt time.Time
}

func (s Seed) Key() TitleKey {
	return TitleKey{Kind: s.Kind, ID: s.TitleID}
}
