package sqlite

import (
	"clubserver/gen/model"
	"clubserver/internal/domain"

	"github.com/google/uuid"
)

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, err
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
		Rating:       player.Rating,
		Handicap:     int(player.Handicap),
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:        player.ID.String(),
		Name:      player.Name,
		Rating:    player.Rating,
		Handicap:  int32(player.Handicap),
		CreatedAt: player.RegisteredAt,
	}
}

func convertMatchToDomain(match model.Matches) (domain.Match, error) {
	winnerID, err := uuid.Parse(match.WinnerID)
	if err != nil {
		return domain.Match{}, err
	}
	loserID, err := uuid.Parse(match.LoserID)
	if err != nil {
		return domain.Match{}, err
	}
	blockID := uuid.Nil
	if match.BlockID != nil {
		blockID, err = uuid.Parse(*match.BlockID)
		if err != nil {
			return domain.Match{}, err
		}
	}
	return domain.Match{
		ID:                  int(match.ID),
		BlockID:             blockID,
		Winner:              domain.Player{ID: winnerID},
		Loser:               domain.Player{ID: loserID},
		WinnerScore:         int(match.WinnerScore),
		LoserScore:          int(match.LoserScore),
		Date:                match.CreatedAt,
		WinnerRatingDelta:   match.WinnerRatingDelta,
		LoserRatingDelta:    match.LoserRatingDelta,
		WinnerHandicapDelta: int(match.WinnerHandicapDelta),
		LoserHandicapDelta:  int(match.LoserHandicapDelta),
	}, nil
}

func convertMatchesToDomain(matches []model.Matches) ([]domain.Match, error) {
	converted := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertMatchFromDomain(match domain.Match) model.Matches {
	m := model.Matches{
		WinnerID:            match.Winner.ID.String(),
		LoserID:             match.Loser.ID.String(),
		WinnerScore:         int32(match.WinnerScore),
		LoserScore:          int32(match.LoserScore),
		WinnerRatingDelta:   match.WinnerRatingDelta,
		LoserRatingDelta:    match.LoserRatingDelta,
		WinnerHandicapDelta: int32(match.WinnerHandicapDelta),
		LoserHandicapDelta:  int32(match.LoserHandicapDelta),
		CreatedAt:           match.Date,
	}
	if match.BlockID != uuid.Nil {
		blockID := match.BlockID.String()
		m.BlockID = &blockID
	}
	return m
}

func convertTournamentToDomain(t model.Tournaments) (domain.Tournament, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return domain.Tournament{}, err
	}
	return domain.Tournament{
		ID:        id,
		Name:      t.Name,
		Status:    domain.TournamentStatus(t.Status),
		CreatedAt: t.CreatedAt,
	}, nil
}

func convertTournamentFromDomain(t domain.Tournament) model.Tournaments {
	return model.Tournaments{
		ID:        t.ID.String(),
		Name:      t.Name,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func convertBlockToDomain(b model.LeagueBlocks) (domain.LeagueBlock, error) {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return domain.LeagueBlock{}, err
	}
	tournamentID, err := uuid.Parse(b.TournamentID)
	if err != nil {
		return domain.LeagueBlock{}, err
	}
	winnerID := uuid.Nil
	if b.WinnerID != nil && *b.WinnerID != "" {
		winnerID, err = uuid.Parse(*b.WinnerID)
		if err != nil {
			return domain.LeagueBlock{}, err
		}
	}
	return domain.LeagueBlock{
		ID:           id,
		TournamentID: tournamentID,
		Name:         b.Name,
		Status:       domain.BlockStatus(b.Status),
		WinnerID:     winnerID,
		WinnerSource: b.WinnerSource,
		CreatedAt:    b.CreatedAt,
	}, nil
}

func convertBlockFromDomain(b domain.LeagueBlock) model.LeagueBlocks {
	block := model.LeagueBlocks{
		ID:           b.ID.String(),
		TournamentID: b.TournamentID.String(),
		Name:         b.Name,
		Status:       string(b.Status),
		WinnerSource: b.WinnerSource,
		CreatedAt:    b.CreatedAt,
	}
	if b.WinnerID != uuid.Nil {
		winnerID := b.WinnerID.String()
		block.WinnerID = &winnerID
	}
	return block
}

func convertNoticeToDomain(n model.Notices) (domain.Notice, error) {
	id, err := uuid.Parse(n.ID)
	if err != nil {
		return domain.Notice{}, err
	}
	return domain.Notice{
		ID:        id,
		Title:     n.Title,
		Body:      n.Body,
		Pinned:    n.Pinned != 0,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}, nil
}

func convertNoticeFromDomain(n domain.Notice) model.Notices {
	pinned := int32(0)
	if n.Pinned {
		pinned = 1
	}
	return model.Notices{
		ID:        n.ID.String(),
		Title:     n.Title,
		Body:      n.Body,
		Pinned:    pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
