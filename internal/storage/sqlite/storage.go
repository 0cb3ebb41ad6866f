package sqlite

import (
	"database/sql"
	"errors"

	"clubserver/gen/model"
	"clubserver/gen/table"
	"clubserver/internal/domain"
	migrate "clubserver/internal/migrate"
	"clubserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.TournamentStorage = (*Storage)(nil)
var _ storage.NoticeStorage = (*Storage)(nil)
var _ storage.ConfigStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.ID.ASC()).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) Add(player domain.Player) (domain.Player, error) {
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		Exec(s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) UpdateRating(id uuid.UUID, newRating float64, newHandicap int) error {
	_, err := table.Players.
		UPDATE(table.Players.Rating, table.Players.Handicap).
		SET(newRating, newHandicap).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		Exec(s.db)
	return err
}

func (s *Storage) ImportPlayers(players []domain.Player) error {
	for _, player := range players {
		_, err := table.Players.
			INSERT(table.Players.AllColumns).
			MODEL(convertPlayerFromDomain(player)).
			ON_CONFLICT(table.Players.ID).
			DO_UPDATE(sqlite.SET(
				table.Players.Rating.SET(sqlite.Float(player.Rating)),
				table.Players.Handicap.SET(sqlite.Int(int64(player.Handicap))),
			)).
			Exec(s.db)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) ListMatches() ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.ID.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return s.withPlayers(matches)
}

func (s *Storage) ListBlockMatches(blockID uuid.UUID) ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.BlockID.EQ(sqlite.String(blockID.String()))).
		ORDER_BY(table.Matches.ID.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return s.withPlayers(matches)
}

// withPlayers joins player rows in memory, the way the match list is
// rendered everywhere.
func (s *Storage) withPlayers(matches []model.Matches) ([]domain.Match, error) {
	domainMatches, err := convertMatchesToDomain(matches)
	if err != nil {
		return nil, err
	}
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	playerMap := convertPlayersToMap(players)
	for i := range domainMatches {
		if p, ok := playerMap[domainMatches[i].Winner.ID]; ok {
			domainMatches[i].Winner = *p
		}
		if p, ok := playerMap[domainMatches[i].Loser.ID]; ok {
			domainMatches[i].Loser = *p
		}
	}
	return domainMatches, nil
}

func convertPlayersToMap(players []domain.Player) map[uuid.UUID]*domain.Player {
	m := make(map[uuid.UUID]*domain.Player)
	for i := range players {
		m[players[i].ID] = &players[i]
	}
	return m
}

func (s *Storage) Create(match domain.Match) (domain.Match, error) {
	var inserted model.Matches
	err := table.Matches.
		INSERT(table.Matches.MutableColumns).
		MODEL(convertMatchFromDomain(match)).
		RETURNING(table.Matches.AllColumns).
		Query(s.db, &inserted)
	if err != nil {
		return domain.Match{}, err
	}
	match.ID = int(inserted.ID)
	return match, nil
}

func (s *Storage) ImportMatches(matches []domain.Match) error {
	for _, match := range matches {
		_, err := table.Matches.
			INSERT(table.Matches.MutableColumns).
			MODEL(convertMatchFromDomain(match)).
			Exec(s.db)
		if err != nil {
			return err
		}
	}
	return nil
}
