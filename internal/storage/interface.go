package storage

import (
	"errors"

	"clubserver/internal/domain"
	"clubserver/internal/rating"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(uuid.UUID) (domain.Player, error)
	Add(domain.Player) (domain.Player, error)
	UpdateRating(id uuid.UUID, newRating float64, newHandicap int) error

	ImportPlayers([]domain.Player) error
}

type MatchStorage interface {
	ListMatches() ([]domain.Match, error)
	ListBlockMatches(blockID uuid.UUID) ([]domain.Match, error)
	Create(domain.Match) (domain.Match, error)

	ImportMatches([]domain.Match) error
}

type TournamentStorage interface {
	ListTournaments() ([]domain.Tournament, error)
	GetTournament(uuid.UUID) (domain.Tournament, error)
	CreateTournament(domain.Tournament) (domain.Tournament, error)

	GetBlock(uuid.UUID) (domain.LeagueBlock, error)
	CreateBlock(domain.LeagueBlock) (domain.LeagueBlock, error)
	UpdateBlock(domain.LeagueBlock) error
}

type NoticeStorage interface {
	ListNotices() ([]domain.Notice, error)
	GetNotice(uuid.UUID) (domain.Notice, error)
	CreateNotice(domain.Notice) (domain.Notice, error)
	UpdateNotice(domain.Notice) error
	DeleteNotice(uuid.UUID) error
}

type ConfigStorage interface {
	// GetRankingConfig returns ErrNotFound until an administrator has
	// saved a config; callers fall back to rating.DefaultConfig.
	GetRankingConfig() (rating.Config, error)
	SaveRankingConfig(rating.Config) error
}
