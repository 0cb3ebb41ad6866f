package web

import (
	"errors"
	"time"

	"clubserver/internal/domain"
	"clubserver/internal/rating"
	"clubserver/internal/service"
	"clubserver/internal/standings"

	"github.com/google/uuid"
)

var (
	ErrMissingPlayer = errors.New("both players must be present")
	ErrSamePlayer    = errors.New("winner and loser must differ")
	ErrBadScore      = errors.New("winner score must be greater than loser score")
	ErrEmptyName     = errors.New("name must not be empty")
	ErrEmptyRoster   = errors.New("roster must name at least two players")
)

type createPlayer struct {
	Name string `json:"name"`
}

func (c createPlayer) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}

type createMatch struct {
	WinnerID    uuid.UUID `json:"winnerId"`
	LoserID     uuid.UUID `json:"loserId"`
	WinnerScore int       `json:"winnerScore"`
	LoserScore  int       `json:"loserScore"`
	BlockID     uuid.UUID `json:"blockId,omitempty"`
}

func (c createMatch) Validate() error {
	var err error
	if c.WinnerID == uuid.Nil || c.LoserID == uuid.Nil {
		err = errors.Join(err, ErrMissingPlayer)
	}
	if c.WinnerID == c.LoserID {
		err = errors.Join(err, ErrSamePlayer)
	}
	if c.WinnerScore <= c.LoserScore || c.LoserScore < 0 {
		err = errors.Join(err, ErrBadScore)
	}
	return err
}

type createTournament struct {
	Name string `json:"name"`
}

func (c createTournament) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}

type createBlock struct {
	TournamentID uuid.UUID   `json:"tournamentId"`
	Name         string      `json:"name"`
	PlayerIDs    []uuid.UUID `json:"playerIds"`
}

func (c createBlock) Validate() error {
	var err error
	if c.TournamentID == uuid.Nil {
		err = errors.Join(err, errors.New("tournamentId must be present"))
	}
	if len(c.PlayerIDs) < 2 {
		err = errors.Join(err, ErrEmptyRoster)
	}
	return err
}

type setBlockWinner struct {
	PlayerID uuid.UUID `json:"playerId"`
}

func (c setBlockWinner) Validate() error {
	if c.PlayerID == uuid.Nil {
		return ErrMissingPlayer
	}
	return nil
}

type createNotice struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

func (c createNotice) Validate() error {
	if c.Title == "" {
		return errors.New("title must not be empty")
	}
	return nil
}

type updateConfig struct {
	KFactor                    int     `json:"kFactor"`
	ScoreDiffMultiplier        float64 `json:"scoreDiffMultiplier"`
	HandicapDiffMultiplier     float64 `json:"handicapDiffMultiplier"`
	WinThresholdHandicapChange int     `json:"winThresholdHandicapChange"`
	HandicapChangeAmount       int     `json:"handicapChangeAmount"`
}

func (c updateConfig) convertToConfig() rating.Config {
	return rating.Config{
		KFactor:                    c.KFactor,
		ScoreDiffMultiplier:        c.ScoreDiffMultiplier,
		HandicapDiffMultiplier:     c.HandicapDiffMultiplier,
		WinThresholdHandicapChange: c.WinThresholdHandicapChange,
		HandicapChangeAmount:       c.HandicapChangeAmount,
	}.Clamp()
}

func convertConfigToResponse(cfg rating.Config) updateConfig {
	return updateConfig{
		KFactor:                    cfg.KFactor,
		ScoreDiffMultiplier:        cfg.ScoreDiffMultiplier,
		HandicapDiffMultiplier:     cfg.HandicapDiffMultiplier,
		WinThresholdHandicapChange: cfg.WinThresholdHandicapChange,
		HandicapChangeAmount:       cfg.HandicapChangeAmount,
	}
}

type playerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Rating       float64   `json:"rating"`
	Handicap     int       `json:"handicap"`
	RatingRank   int       `json:"ratingRank,omitempty"`
	GamesPlayed  int       `json:"gamesPlayed"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func convertPlayerToResponse(p domain.Player) playerResponse {
	return playerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Rating:       p.Rating,
		Handicap:     p.Handicap,
		RatingRank:   p.RatingRank,
		GamesPlayed:  p.GamesPlayed,
		RegisteredAt: p.RegisteredAt,
	}
}

func convertPlayersToResponse(players []domain.Player) []playerResponse {
	resp := make([]playerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, convertPlayerToResponse(p))
	}
	return resp
}

type matchResponse struct {
	ID                  int       `json:"id"`
	BlockID             uuid.UUID `json:"blockId,omitempty"`
	Winner              string    `json:"winner"`
	Loser               string    `json:"loser"`
	WinnerID            uuid.UUID `json:"winnerId"`
	LoserID             uuid.UUID `json:"loserId"`
	WinnerScore         int       `json:"winnerScore"`
	LoserScore          int       `json:"loserScore"`
	WinnerRatingDelta   float64   `json:"winnerRatingDelta"`
	LoserRatingDelta    float64   `json:"loserRatingDelta"`
	WinnerHandicapDelta int       `json:"winnerHandicapDelta"`
	LoserHandicapDelta  int       `json:"loserHandicapDelta"`
	Date                time.Time `json:"date"`
}

func convertMatchToResponse(m domain.Match) matchResponse {
	return matchResponse{
		ID:                  m.ID,
		BlockID:             m.BlockID,
		Winner:              m.Winner.Name,
		Loser:               m.Loser.Name,
		WinnerID:            m.Winner.ID,
		LoserID:             m.Loser.ID,
		WinnerScore:         m.WinnerScore,
		LoserScore:          m.LoserScore,
		WinnerRatingDelta:   m.WinnerRatingDelta,
		LoserRatingDelta:    m.LoserRatingDelta,
		WinnerHandicapDelta: m.WinnerHandicapDelta,
		LoserHandicapDelta:  m.LoserHandicapDelta,
		Date:                m.Date,
	}
}

type tournamentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Blocks    []blockResponse `json:"blocks"`
}

type blockResponse struct {
	ID           uuid.UUID        `json:"id"`
	TournamentID uuid.UUID        `json:"tournamentId"`
	Name         string           `json:"name"`
	Status       string           `json:"status"`
	WinnerID     *uuid.UUID       `json:"winnerId"`
	WinnerSource string           `json:"winnerSource"`
	CreatedAt    time.Time        `json:"createdAt"`
	Roster       []playerResponse `json:"roster"`
}

func convertTournamentToResponse(t domain.Tournament) tournamentResponse {
	resp := tournamentResponse{
		ID:        t.ID,
		Name:      t.Name,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		Blocks:    make([]blockResponse, 0, len(t.Blocks)),
	}
	for _, b := range t.Blocks {
		resp.Blocks = append(resp.Blocks, convertBlockToResponse(b))
	}
	return resp
}

func convertBlockToResponse(b domain.LeagueBlock) blockResponse {
	resp := blockResponse{
		ID:           b.ID,
		TournamentID: b.TournamentID,
		Name:         b.Name,
		Status:       string(b.Status),
		WinnerSource: b.WinnerSource,
		CreatedAt:    b.CreatedAt,
		Roster:       convertPlayersToResponse(b.Roster),
	}
	if b.WinnerID != uuid.Nil {
		winnerID := b.WinnerID
		resp.WinnerID = &winnerID
	}
	return resp
}

type standingsRowResponse struct {
	PlayerID      uuid.UUID `json:"playerId"`
	Rank          int       `json:"rank"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	PointsFor     int       `json:"pointsFor"`
	PointsAgainst int       `json:"pointsAgainst"`
	PointDiff     int       `json:"pointDiff"`
}

type blockStandingsResponse struct {
	BlockID  uuid.UUID              `json:"blockId"`
	Name     string                 `json:"name"`
	Status   string                 `json:"status"`
	WinnerID *uuid.UUID             `json:"winnerId"`
	Source   string                 `json:"winnerSource"`
	Rows     []standingsRowResponse `json:"standings"`
}

func convertBlockStandingsToResponse(bs service.BlockStandings) blockStandingsResponse {
	resp := blockStandingsResponse{
		BlockID: bs.Block.ID,
		Name:    bs.Block.Name,
		Status:  string(bs.Block.Status),
		Source:  string(bs.Source),
		Rows:    make([]standingsRowResponse, 0, len(bs.Rows)),
	}
	if bs.WinnerID != uuid.Nil {
		winnerID := bs.WinnerID
		resp.WinnerID = &winnerID
	}
	for _, row := range bs.Rows {
		resp.Rows = append(resp.Rows, convertRowToResponse(row))
	}
	return resp
}

func convertRowToResponse(row standings.Row) standingsRowResponse {
	return standingsRowResponse{
		PlayerID:      row.PlayerID,
		Rank:          row.Rank,
		Wins:          row.Wins,
		Losses:        row.Losses,
		PointsFor:     row.PointsFor,
		PointsAgainst: row.PointsAgainst,
		PointDiff:     row.PointDiff,
	}
}

type noticeResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func convertNoticeToResponse(n domain.Notice) noticeResponse {
	return noticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
