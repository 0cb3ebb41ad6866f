package domain

import (
	"time"

	"github.com/google/uuid"
)

type TournamentStatus string

const (
	TournamentOpen     TournamentStatus = "open"
	TournamentFinished TournamentStatus = "finished"
)

type Tournament struct {
	ID        uuid.UUID
	Name      string
	Status    TournamentStatus
	CreatedAt time.Time

	Blocks []LeagueBlock
}

type BlockStatus string

const (
	BlockOpen     BlockStatus = "open"
	BlockFinished BlockStatus = "finished"
)

// LeagueBlock is one round-robin group of a tournament. WinnerID stays
// uuid.Nil until a winner is set explicitly or inferred from results.
type LeagueBlock struct {
	ID           uuid.UUID
	TournamentID uuid.UUID
	Name         string
	Status       BlockStatus
	WinnerID     uuid.UUID
	WinnerSource string
	CreatedAt    time.Time

	Roster []Player
}

func (b LeagueBlock) Finished() bool {
	return b.Status == BlockFinished
}
