package service

import (
	"errors"
	"time"

	"clubserver/internal/domain"
	"clubserver/internal/standings"
	"clubserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrBlockNotFound      = errors.New("league block not found")
	ErrNotInBlock         = errors.New("player is not in the block roster")
	ErrEmptyRoster        = errors.New("block roster must name at least two players")
)

type TournamentService struct {
	tournamentStorage storage.TournamentStorage
	playerStorage     storage.PlayerStorage
	matchStorage      storage.MatchStorage
	log               *logrus.Entry
}

func NewTournamentService(
	tournamentStorage storage.TournamentStorage,
	playerStorage storage.PlayerStorage,
	matchStorage storage.MatchStorage,
	log *logrus.Logger,
) *TournamentService {
	return &TournamentService{
		tournamentStorage: tournamentStorage,
		playerStorage:     playerStorage,
		matchStorage:      matchStorage,
		log:               log.WithField("name", "tournament_service"),
	}
}

func (s *TournamentService) ListTournaments() ([]domain.Tournament, error) {
	return s.tournamentStorage.ListTournaments()
}

func (s *TournamentService) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	t, err := s.tournamentStorage.GetTournament(id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Tournament{}, ErrTournamentNotFound
	}
	return t, err
}

func (s *TournamentService) CreateTournament(name string) (domain.Tournament, error) {
	if name == "" {
		return domain.Tournament{}, ErrEmptyName
	}
	return s.tournamentStorage.CreateTournament(domain.Tournament{
		ID:        uuid.New(),
		Name:      name,
		Status:    domain.TournamentOpen,
		CreatedAt: time.Now(),
	})
}

func (s *TournamentService) CreateBlock(tournamentID uuid.UUID, name string, playerIDs []uuid.UUID) (domain.LeagueBlock, error) {
	if len(playerIDs) < 2 {
		return domain.LeagueBlock{}, ErrEmptyRoster
	}
	if _, err := s.GetTournament(tournamentID); err != nil {
		return domain.LeagueBlock{}, err
	}
	roster := make([]domain.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		player, err := s.playerStorage.Get(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.LeagueBlock{}, ErrPlayerNotFound
			}
			return domain.LeagueBlock{}, err
		}
		roster = append(roster, player)
	}
	return s.tournamentStorage.CreateBlock(domain.LeagueBlock{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		Name:         name,
		Status:       domain.BlockOpen,
		WinnerSource: string(standings.SourceUnresolved),
		CreatedAt:    time.Now(),
		Roster:       roster,
	})
}

// FinishBlock marks the block finished and resolves its winner with
// whatever results exist.
func (s *TournamentService) FinishBlock(blockID uuid.UUID) (BlockStandings, error) {
	block, err := s.getBlock(blockID)
	if err != nil {
		return BlockStandings{}, err
	}
	block.Status = domain.BlockFinished
	if err := s.tournamentStorage.UpdateBlock(block); err != nil {
		return BlockStandings{}, err
	}
	return s.BlockStandings(blockID)
}

// SetBlockWinner records an administrator override. It is honored
// verbatim, whatever the standings say, as long as the player belongs to
// the roster.
func (s *TournamentService) SetBlockWinner(blockID, playerID uuid.UUID) error {
	block, err := s.getBlock(blockID)
	if err != nil {
		return err
	}
	found := false
	for _, p := range block.Roster {
		if p.ID == playerID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotInBlock
	}
	block.WinnerID = playerID
	block.WinnerSource = string(standings.SourceExplicit)
	return s.tournamentStorage.UpdateBlock(block)
}

type BlockStandings struct {
	Block    domain.LeagueBlock
	Rows     []standings.Row
	WinnerID uuid.UUID
	Source   standings.WinnerSource
}

// BlockStandings recomputes the block table from raw match rows and
// re-runs winner resolution. A freshly inferred winner is persisted back
// to the block row; an unresolved winner is a normal outcome that the
// caller renders as "not yet determined".
func (s *TournamentService) BlockStandings(blockID uuid.UUID) (BlockStandings, error) {
	block, err := s.getBlock(blockID)
	if err != nil {
		return BlockStandings{}, err
	}
	matches, err := s.matchStorage.ListBlockMatches(blockID)
	if err != nil {
		return BlockStandings{}, err
	}

	outcomes := make([]standings.Outcome, 0, len(matches))
	for _, m := range matches {
		outcomes = append(outcomes, standings.Outcome{
			WinnerID:    m.Winner.ID,
			LoserID:     m.Loser.ID,
			WinnerScore: m.WinnerScore,
			LoserScore:  m.LoserScore,
			PlayedAt:    m.Date,
		})
	}
	roster := make([]standings.Participant, 0, len(block.Roster))
	for _, p := range block.Roster {
		roster = append(roster, standings.Participant{
			PlayerID:    p.ID,
			Placeholder: p.IsPlaceholder(),
		})
	}
	explicit := uuid.Nil
	if block.WinnerSource == string(standings.SourceExplicit) {
		explicit = block.WinnerID
	}

	res := standings.Resolve(outcomes, roster, explicit, block.Finished())

	if res.Source != standings.SourceUnresolved && res.Source != standings.SourceExplicit &&
		(block.WinnerID != res.WinnerID || block.WinnerSource != string(res.Source)) {
		block.WinnerID = res.WinnerID
		block.WinnerSource = string(res.Source)
		if err := s.tournamentStorage.UpdateBlock(block); err != nil {
			s.log.WithError(err).Error("persisting resolved winner failed")
		}
	}

	return BlockStandings{
		Block:    block,
		Rows:     res.Rows,
		WinnerID: res.WinnerID,
		Source:   res.Source,
	}, nil
}

func (s *TournamentService) getBlock(blockID uuid.UUID) (domain.LeagueBlock, error) {
	block, err := s.tournamentStorage.GetBlock(blockID)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.LeagueBlock{}, ErrBlockNotFound
	}
	return block, err
}
