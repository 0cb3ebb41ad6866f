package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"clubserver/internal/cache/mem"
	"clubserver/internal/domain"
	"clubserver/internal/rating"
	"clubserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameTaken      = errors.New("player name already taken")
	ErrSamePlayer     = errors.New("winner and loser must be different players")
	ErrInvalidScore   = errors.New("winner score must be greater than loser score, both non-negative")
	ErrEmptyName      = errors.New("empty player name")
)

const baseRating = 1000

type PlayerService struct {
	playerStorage storage.PlayerStorage
	matchStorage  storage.MatchStorage
	configStorage storage.ConfigStorage
	cache         *mem.Cache
	log           *logrus.Entry

	// notify pushes a human-readable line to bot subscribers; nil until
	// a bot registers.
	notify func(msg string)
}

func New(
	playerStorage storage.PlayerStorage,
	matchStorage storage.MatchStorage,
	configStorage storage.ConfigStorage,
	cache *mem.Cache,
	log *logrus.Logger,
) *PlayerService {
	return &PlayerService{
		playerStorage: playerStorage,
		matchStorage:  matchStorage,
		configStorage: configStorage,
		cache:         cache,
		log:           log.WithField("name", "player_service"),
	}
}

func (s *PlayerService) SetNotifier(fn func(msg string)) {
	s.notify = fn
}

func (s *PlayerService) ListPlayers() ([]domain.Player, error) {
	return s.playerStorage.ListPlayers()
}

func (s *PlayerService) Get(id uuid.UUID) (domain.Player, error) {
	player, err := s.playerStorage.Get(id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Player{}, ErrPlayerNotFound
	}
	return player, err
}

func (s *PlayerService) GetByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	if err := s.refreshCache(); err != nil {
		return domain.Player{}, err
	}
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	return domain.Player{}, ErrPlayerNotFound
}

func (s *PlayerService) CreatePlayer(name string) (domain.Player, error) {
	if name == "" {
		return domain.Player{}, ErrEmptyName
	}
	if _, err := s.GetByName(name); err == nil {
		return domain.Player{}, ErrNameTaken
	}
	player := domain.Player{
		ID:           uuid.New(),
		Name:         name,
		RegisteredAt: time.Now(),
		Rating:       baseRating,
		Handicap:     0,
	}
	created, err := s.playerStorage.Add(player)
	if err != nil {
		return domain.Player{}, err
	}
	if err := s.refreshCache(); err != nil {
		s.log.WithError(err).Warn("cache refresh failed after create")
	}
	return created, nil
}

// GetRatings returns all players ordered by rating with display ranks
// and games-played counts filled in.
func (s *PlayerService) GetRatings() ([]domain.Player, error) {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return nil, err
	}
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	gamesPlayed := make(map[uuid.UUID]int)
	for _, match := range matches {
		gamesPlayed[match.Winner.ID]++
		gamesPlayed[match.Loser.ID]++
	}
	for i := range players {
		players[i].GamesPlayed = gamesPlayed[players[i].ID]
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Rating > players[j].Rating
	})
	for i := range players {
		players[i].RatingRank = i + 1
	}
	return players, nil
}

// RecordMatch scores a completed match: runs the rating adjustment over
// the current config and persists the match row and both players' new
// rating and handicap. blockID is uuid.Nil for friendly matches.
func (s *PlayerService) RecordMatch(winnerID, loserID uuid.UUID, winnerScore, loserScore int, blockID uuid.UUID) (domain.Match, error) {
	if winnerID == loserID || winnerID == uuid.Nil || loserID == uuid.Nil {
		return domain.Match{}, ErrSamePlayer
	}
	if winnerScore <= loserScore || loserScore < 0 {
		return domain.Match{}, ErrInvalidScore
	}
	winner, err := s.Get(winnerID)
	if err != nil {
		return domain.Match{}, err
	}
	loser, err := s.Get(loserID)
	if err != nil {
		return domain.Match{}, err
	}

	cfg := s.rankingConfig()
	res := rating.Calculate(
		rating.PlayerState{Rating: winner.Rating, Handicap: winner.Handicap},
		rating.PlayerState{Rating: loser.Rating, Handicap: loser.Handicap},
		winnerScore, loserScore, cfg,
	)

	match := domain.Match{
		BlockID:             blockID,
		Winner:              winner,
		Loser:               loser,
		WinnerScore:         winnerScore,
		LoserScore:          loserScore,
		Date:                time.Now(),
		WinnerRatingDelta:   res.WinnerRatingDelta,
		LoserRatingDelta:    res.LoserRatingDelta,
		WinnerHandicapDelta: res.WinnerHandicapDelta,
		LoserHandicapDelta:  res.LoserHandicapDelta,
	}
	match, err = s.matchStorage.Create(match)
	if err != nil {
		return domain.Match{}, err
	}
	if err := s.playerStorage.UpdateRating(winner.ID, res.WinnerRating, res.WinnerHandicap); err != nil {
		return domain.Match{}, err
	}
	if err := s.playerStorage.UpdateRating(loser.ID, res.LoserRating, res.LoserHandicap); err != nil {
		return domain.Match{}, err
	}
	if err := s.refreshCache(); err != nil {
		s.log.WithError(err).Warn("cache refresh failed after match")
	}
	if s.notify != nil {
		s.notify(fmt.Sprintf("%s beat %s %d:%d (%+0.1f / %+0.1f)",
			winner.Name, loser.Name, winnerScore, loserScore,
			res.WinnerRatingDelta, res.LoserRatingDelta))
	}
	return match, nil
}

// GetMatches returns all matches newest first, with player rows filled.
func (s *PlayerService) GetMatches() ([]domain.Match, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	reverse(matches)
	return matches, nil
}

func reverse(m []domain.Match) {
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

// GetPlayerStats aggregates head-to-head records of one player against
// every opponent they have faced.
func (s *PlayerService) GetPlayerStats(id uuid.UUID) (map[uuid.UUID]domain.PlayerStats, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	results := make(map[uuid.UUID]domain.PlayerStats)
	for _, player := range players {
		results[player.ID] = domain.PlayerStats{Player: player}
	}
	for i := range matches {
		var other uuid.UUID
		var won bool
		switch id {
		case matches[i].Winner.ID:
			other = matches[i].Loser.ID
			won = true
		case matches[i].Loser.ID:
			other = matches[i].Winner.ID
		default:
			continue
		}
		r := results[other]
		if won {
			r.Wins++
		} else {
			r.Losses++
		}
		results[other] = r
	}
	return results, nil
}

func (s *PlayerService) rankingConfig() rating.Config {
	if cfg, ok := s.cache.GetConfig(); ok {
		return cfg
	}
	cfg, err := s.configStorage.GetRankingConfig()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).Error("ranking config load failed, using defaults")
		}
		cfg = rating.DefaultConfig()
	}
	cfg = cfg.Clamp()
	s.cache.SetConfig(cfg)
	return cfg
}

func (s *PlayerService) refreshCache() error {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return err
	}
	s.cache.Update(players)
	return nil
}

const exportVersion = 1

type export struct {
	Version int
	Players []domain.Player
	Matches []domain.Match
}

func (s *PlayerService) Export() ([]byte, error) {
	players, err := s.GetRatings()
	if err != nil {
		return nil, err
	}
	matches, err := s.GetMatches()
	if err != nil {
		return nil, err
	}
	exportData := export{
		Version: exportVersion,
		Players: players,
		Matches: matches,
	}
	data, err := json.Marshal(exportData)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *PlayerService) Import(data []byte) error {
	var importData export
	err := json.Unmarshal(data, &importData)
	if err != nil {
		return err
	}
	if importData.Version != exportVersion {
		return errors.New("invalid export file version")
	}
	err = s.playerStorage.ImportPlayers(importData.Players)
	if err != nil {
		return err
	}
	err = s.matchStorage.ImportMatches(importData.Matches)
	if err != nil {
		return err
	}
	return s.refreshCache()
}
