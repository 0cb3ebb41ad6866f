package sqlite

import (
	"errors"

	"clubserver/gen/model"
	"clubserver/gen/table"
	"clubserver/internal/domain"
	"clubserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) ListTournaments() ([]domain.Tournament, error) {
	var tournaments []model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		ORDER_BY(table.Tournaments.CreatedAt.DESC()).
		Query(s.db, &tournaments)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		dt, err := convertTournamentToDomain(t)
		if err != nil {
			return nil, err
		}
		converted = append(converted, dt)
	}
	return converted, nil
}

func (s *Storage) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	var t model.Tournaments
	err := table.Tournaments.
		SELECT(table.Tournaments.AllColumns).
		FROM(table.Tournaments).
		WHERE(table.Tournaments.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &t)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Tournament{}, storage.ErrNotFound
		}
		return domain.Tournament{}, err
	}
	tournament, err := convertTournamentToDomain(t)
	if err != nil {
		return domain.Tournament{}, err
	}

	var blocks []model.LeagueBlocks
	err = table.LeagueBlocks.
		SELECT(table.LeagueBlocks.AllColumns).
		FROM(table.LeagueBlocks).
		WHERE(table.LeagueBlocks.TournamentID.EQ(sqlite.String(id.String()))).
		ORDER_BY(table.LeagueBlocks.CreatedAt.ASC()).
		Query(s.db, &blocks)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return domain.Tournament{}, err
	}
	for _, b := range blocks {
		block, err := convertBlockToDomain(b)
		if err != nil {
			return domain.Tournament{}, err
		}
		tournament.Blocks = append(tournament.Blocks, block)
	}
	return tournament, nil
}

func (s *Storage) CreateTournament(t domain.Tournament) (domain.Tournament, error) {
	_, err := table.Tournaments.
		INSERT(table.Tournaments.AllColumns).
		MODEL(convertTournamentFromDomain(t)).
		Exec(s.db)
	if err != nil {
		return domain.Tournament{}, err
	}
	return t, nil
}

func (s *Storage) GetBlock(id uuid.UUID) (domain.LeagueBlock, error) {
	var b model.LeagueBlocks
	err := table.LeagueBlocks.
		SELECT(table.LeagueBlocks.AllColumns).
		FROM(table.LeagueBlocks).
		WHERE(table.LeagueBlocks.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &b)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.LeagueBlock{}, storage.ErrNotFound
		}
		return domain.LeagueBlock{}, err
	}
	block, err := convertBlockToDomain(b)
	if err != nil {
		return domain.LeagueBlock{}, err
	}
	block.Roster, err = s.blockRoster(id)
	if err != nil {
		return domain.LeagueBlock{}, err
	}
	return block, nil
}

// blockRoster loads roster entries ordered by player id so standings
// tie order stays reproducible.
func (s *Storage) blockRoster(blockID uuid.UUID) ([]domain.Player, error) {
	var rows []struct {
		model.BlockPlayers
		Players model.Players
	}
	err := table.BlockPlayers.
		SELECT(table.BlockPlayers.AllColumns, table.Players.AllColumns).
		FROM(table.BlockPlayers.
			INNER_JOIN(table.Players, table.Players.ID.EQ(table.BlockPlayers.PlayerID)),
		).
		WHERE(table.BlockPlayers.BlockID.EQ(sqlite.String(blockID.String()))).
		ORDER_BY(table.BlockPlayers.PlayerID.ASC()).
		Query(s.db, &rows)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	roster := make([]domain.Player, 0, len(rows))
	for _, row := range rows {
		p, err := convertPlayerToDomain(row.Players)
		if err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}
	return roster, nil
}

func (s *Storage) CreateBlock(block domain.LeagueBlock) (domain.LeagueBlock, error) {
	_, err := table.LeagueBlocks.
		INSERT(table.LeagueBlocks.AllColumns).
		MODEL(convertBlockFromDomain(block)).
		Exec(s.db)
	if err != nil {
		return domain.LeagueBlock{}, err
	}
	for _, p := range block.Roster {
		placeholder := int32(0)
		if p.IsPlaceholder() {
			placeholder = 1
		}
		_, err = table.BlockPlayers.
			INSERT(table.BlockPlayers.AllColumns).
			MODEL(model.BlockPlayers{
				BlockID:     block.ID.String(),
				PlayerID:    p.ID.String(),
				Placeholder: placeholder,
			}).
			Exec(s.db)
		if err != nil {
			return domain.LeagueBlock{}, err
		}
	}
	return block, nil
}

func (s *Storage) UpdateBlock(block domain.LeagueBlock) error {
	// MODEL keeps winner_id nullable: an undecided block stores NULL,
	// never the empty string.
	_, err := table.LeagueBlocks.
		UPDATE(table.LeagueBlocks.Status, table.LeagueBlocks.WinnerID, table.LeagueBlocks.WinnerSource).
		MODEL(convertBlockFromDomain(block)).
		WHERE(table.LeagueBlocks.ID.EQ(sqlite.String(block.ID.String()))).
		Exec(s.db)
	return err
}
