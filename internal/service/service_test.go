package service

import (
	"testing"

	"clubserver/internal/cache/mem"
	"clubserver/internal/domain"
	"clubserver/internal/logger"
	"clubserver/internal/rating"
	"clubserver/internal/standings"
	"clubserver/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	players map[uuid.UUID]domain.Player
	order   []uuid.UUID
	matches []domain.Match

	cfg    *rating.Config
	blocks map[uuid.UUID]domain.LeagueBlock
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		players: make(map[uuid.UUID]domain.Player),
		blocks:  make(map[uuid.UUID]domain.LeagueBlock),
	}
}

var _ storage.PlayerStorage = (*fakeStore)(nil)
var _ storage.MatchStorage = (*fakeStore)(nil)
var _ storage.ConfigStorage = (*fakeStore)(nil)

func (f *fakeStore) ListPlayers() ([]domain.Player, error) {
	players := make([]domain.Player, 0, len(f.order))
	for _, id := range f.order {
		players = append(players, f.players[id])
	}
	return players, nil
}

func (f *fakeStore) Get(id uuid.UUID) (domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return player, nil
}

func (f *fakeStore) Add(player domain.Player) (domain.Player, error) {
	f.players[player.ID] = player
	f.order = append(f.order, player.ID)
	return player, nil
}

func (f *fakeStore) UpdateRating(id uuid.UUID, newRating float64, newHandicap int) error {
	player := f.players[id]
	player.Rating = newRating
	player.Handicap = newHandicap
	f.players[id] = player
	return nil
}

func (f *fakeStore) ImportPlayers(players []domain.Player) error {
	for _, p := range players {
		f.players[p.ID] = p
		f.order = append(f.order, p.ID)
	}
	return nil
}

func (f *fakeStore) ListMatches() ([]domain.Match, error) {
	return append([]domain.Match(nil), f.matches...), nil
}

func (f *fakeStore) ListBlockMatches(blockID uuid.UUID) ([]domain.Match, error) {
	var matches []domain.Match
	for _, m := range f.matches {
		if m.BlockID == blockID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (f *fakeStore) Create(match domain.Match) (domain.Match, error) {
	match.ID = len(f.matches) + 1
	f.matches = append(f.matches, match)
	return match, nil
}

func (f *fakeStore) ImportMatches(matches []domain.Match) error {
	f.matches = append(f.matches, matches...)
	return nil
}

func (f *fakeStore) GetRankingConfig() (rating.Config, error) {
	if f.cfg == nil {
		return rating.Config{}, storage.ErrNotFound
	}
	return *f.cfg, nil
}

func (f *fakeStore) SaveRankingConfig(cfg rating.Config) error {
	clamped := cfg.Clamp()
	f.cfg = &clamped
	return nil
}

var _ storage.TournamentStorage = (*fakeStore)(nil)

func (f *fakeStore) ListTournaments() ([]domain.Tournament, error) { return nil, nil }

func (f *fakeStore) GetTournament(id uuid.UUID) (domain.Tournament, error) {
	return domain.Tournament{ID: id, Status: domain.TournamentOpen}, nil
}

func (f *fakeStore) CreateTournament(t domain.Tournament) (domain.Tournament, error) {
	return t, nil
}

func (f *fakeStore) GetBlock(id uuid.UUID) (domain.LeagueBlock, error) {
	block, ok := f.blocks[id]
	if !ok {
		return domain.LeagueBlock{}, storage.ErrNotFound
	}
	return block, nil
}

func (f *fakeStore) CreateBlock(block domain.LeagueBlock) (domain.LeagueBlock, error) {
	f.blocks[block.ID] = block
	return block, nil
}

func (f *fakeStore) UpdateBlock(block domain.LeagueBlock) error {
	roster := f.blocks[block.ID].Roster
	block.Roster = roster
	f.blocks[block.ID] = block
	return nil
}

func newTestPlayerService(store *fakeStore) *PlayerService {
	return New(store, store, store, mem.New(), logger.New(false))
}

func addPlayer(t *testing.T, store *fakeStore, name string, r float64, handicap int) domain.Player {
	t.Helper()
	player, err := store.Add(domain.Player{
		ID:       uuid.New(),
		Name:     name,
		Rating:   r,
		Handicap: handicap,
	})
	require.NoError(t, err)
	return player
}

func TestPlayerService_RecordMatch(t *testing.T) {
	store := newFakeStore()
	winner := addPlayer(t, store, "alice", 1000, 30)
	loser := addPlayer(t, store, "bob", 1000, 30)
	svc := newTestPlayerService(store)

	var notified string
	svc.SetNotifier(func(msg string) { notified = msg })

	match, err := svc.RecordMatch(winner.ID, loser.ID, 15, 0, uuid.Nil)
	require.NoError(t, err)

	// k=32, scoreDiff=0.05, handicapDiff=0.02 defaults:
	// base 16 + margin 24 + gap 0 = 40
	assert.InDelta(t, 40, match.WinnerRatingDelta, 1e-9)
	assert.InDelta(t, -40, match.LoserRatingDelta, 1e-9)
	assert.Equal(t, 0, match.WinnerHandicapDelta)
	assert.Equal(t, 1, match.LoserHandicapDelta)

	updatedWinner, err := store.Get(winner.ID)
	require.NoError(t, err)
	updatedLoser, err := store.Get(loser.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1040, updatedWinner.Rating, 1e-9)
	assert.InDelta(t, 960, updatedLoser.Rating, 1e-9)
	assert.Equal(t, 30, updatedWinner.Handicap)
	assert.Equal(t, 31, updatedLoser.Handicap)

	require.Len(t, store.matches, 1)
	assert.NotEmpty(t, notified)
}

func TestPlayerService_RecordMatchValidation(t *testing.T) {
	store := newFakeStore()
	a := addPlayer(t, store, "alice", 1000, 0)
	b := addPlayer(t, store, "bob", 1000, 0)
	svc := newTestPlayerService(store)

	_, err := svc.RecordMatch(a.ID, a.ID, 15, 3, uuid.Nil)
	assert.ErrorIs(t, err, ErrSamePlayer)

	_, err = svc.RecordMatch(a.ID, b.ID, 10, 15, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.RecordMatch(a.ID, b.ID, 15, -1, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.RecordMatch(uuid.New(), b.ID, 15, 3, uuid.Nil)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerService_GetRatings(t *testing.T) {
	store := newFakeStore()
	a := addPlayer(t, store, "alice", 1100, 0)
	b := addPlayer(t, store, "bob", 1200, 0)
	addPlayer(t, store, "carol", 900, 0)
	store.matches = []domain.Match{
		{Winner: domain.Player{ID: b.ID}, Loser: domain.Player{ID: a.ID}},
	}
	svc := newTestPlayerService(store)

	ratings, err := svc.GetRatings()
	require.NoError(t, err)
	require.Len(t, ratings, 3)
	assert.Equal(t, "bob", ratings[0].Name)
	assert.Equal(t, 1, ratings[0].RatingRank)
	assert.Equal(t, 1, ratings[0].GamesPlayed)
	assert.Equal(t, "carol", ratings[2].Name)
	assert.Equal(t, 3, ratings[2].RatingRank)
	assert.Equal(t, 0, ratings[2].GamesPlayed)
}

func TestPlayerService_CreatePlayerNameTaken(t *testing.T) {
	store := newFakeStore()
	svc := newTestPlayerService(store)

	_, err := svc.CreatePlayer("Alice")
	require.NoError(t, err)
	_, err = svc.CreatePlayer("alice")
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestConfigService_ClampsOnUpdate(t *testing.T) {
	store := newFakeStore()
	svc := NewConfigService(store, mem.New(), logger.New(false))

	got, err := svc.Update(rating.Config{
		KFactor:                    1000,
		ScoreDiffMultiplier:        5,
		HandicapDiffMultiplier:     -1,
		WinThresholdHandicapChange: 70,
		HandicapChangeAmount:       -50,
	})
	require.NoError(t, err)
	assert.Equal(t, rating.Config{
		KFactor:                    64,
		ScoreDiffMultiplier:        0.1,
		HandicapDiffMultiplier:     0.01,
		WinThresholdHandicapChange: 50,
		HandicapChangeAmount:       -10,
	}, got)

	loaded, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, got, loaded)
}

func TestConfigService_DefaultsWhenUnset(t *testing.T) {
	store := newFakeStore()
	svc := NewConfigService(store, mem.New(), logger.New(false))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, rating.DefaultConfig(), got)
}

func TestTournamentService_BlockStandings(t *testing.T) {
	store := newFakeStore()
	a := addPlayer(t, store, "alice", 1000, 0)
	b := addPlayer(t, store, "bob", 1000, 0)
	c := addPlayer(t, store, "carol", 1000, 0)
	svc := NewTournamentService(store, store, store, logger.New(false))

	block, err := svc.CreateBlock(uuid.New(), "Block A", []uuid.UUID{a.ID, b.ID, c.ID})
	require.NoError(t, err)

	ps := newTestPlayerService(store)
	_, err = ps.RecordMatch(a.ID, b.ID, 15, 8, block.ID)
	require.NoError(t, err)
	_, err = ps.RecordMatch(a.ID, c.ID, 15, 3, block.ID)
	require.NoError(t, err)
	_, err = ps.RecordMatch(b.ID, c.ID, 15, 10, block.ID)
	require.NoError(t, err)

	res, err := svc.BlockStandings(block.ID)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, a.ID, res.Rows[0].PlayerID)
	assert.Equal(t, a.ID, res.WinnerID)
	assert.Equal(t, standings.SourceStandings, res.Source)

	// the inferred winner is persisted back to the block row
	stored, err := store.GetBlock(block.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, stored.WinnerID)
	assert.Equal(t, string(standings.SourceStandings), stored.WinnerSource)
}

func TestTournamentService_ExplicitWinnerWins(t *testing.T) {
	store := newFakeStore()
	a := addPlayer(t, store, "alice", 1000, 0)
	b := addPlayer(t, store, "bob", 1000, 0)
	svc := NewTournamentService(store, store, store, logger.New(false))

	block, err := svc.CreateBlock(uuid.New(), "Block B", []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)

	ps := newTestPlayerService(store)
	_, err = ps.RecordMatch(a.ID, b.ID, 15, 2, block.ID)
	require.NoError(t, err)

	require.NoError(t, svc.SetBlockWinner(block.ID, b.ID))

	res, err := svc.BlockStandings(block.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, res.WinnerID)
	assert.Equal(t, standings.SourceExplicit, res.Source)

	assert.ErrorIs(t, svc.SetBlockWinner(block.ID, uuid.New()), ErrNotInBlock)
}

func TestPlayerService_ExportImportRoundTrip(t *testing.T) {
	store := newFakeStore()
	a := addPlayer(t, store, "alice", 1000, 0)
	b := addPlayer(t, store, "bob", 1000, 0)
	svc := newTestPlayerService(store)

	_, err := svc.RecordMatch(a.ID, b.ID, 11, 5, uuid.Nil)
	require.NoError(t, err)

	data, err := svc.Export()
	require.NoError(t, err)

	fresh := newFakeStore()
	freshSvc := newTestPlayerService(fresh)
	require.NoError(t, freshSvc.Import(data))

	players, err := freshSvc.ListPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 2)
	matches, err := freshSvc.GetMatches()
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, a.ID, matches[0].Winner.ID)

	assert.Error(t, freshSvc.Import([]byte(`{"Version":99}`)))
}
