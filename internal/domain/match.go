package domain

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID          int
	BlockID     uuid.UUID // uuid.Nil for friendly matches outside a block
	Winner      Player
	Loser       Player
	WinnerScore int
	LoserScore  int
	Date        time.Time

	WinnerRatingDelta   float64
	LoserRatingDelta    float64
	WinnerHandicapDelta int
	LoserHandicapDelta  int
}
