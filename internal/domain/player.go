package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderName marks a bye roster entry. Such players fill out a
// block's pairings but can never win it.
const PlaceholderName = "def"

type Player struct {
	ID           uuid.UUID
	Name         string
	RegisteredAt time.Time
	Rating       float64
	Handicap     int

	// filled from match history, not persisted
	GamesPlayed int
	RatingRank  int
}

func (p Player) IsPlaceholder() bool {
	return p.Name == PlaceholderName
}

type PlayerStats struct {
	Player Player
	Wins   int
	Losses int
}
