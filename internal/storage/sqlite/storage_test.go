package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"clubserver/internal/domain"
	"clubserver/internal/logger"
	"clubserver/internal/rating"
	"clubserver/internal/standings"
	"clubserver/internal/storage"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(logger.New(false), filepath.Join(t.TempDir(), "club.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addTestPlayer(t *testing.T, s *Storage, name string) domain.Player {
	t.Helper()
	player, err := s.Add(domain.Player{
		ID:           uuid.New(),
		Name:         name,
		RegisteredAt: time.Now(),
		Rating:       1000,
	})
	require.NoError(t, err)
	return player
}

func TestStorage_BlockLifecycle(t *testing.T) {
	s := newTestStorage(t)
	alice := addTestPlayer(t, s, "alice")
	bob := addTestPlayer(t, s, "bob")

	tournament, err := s.CreateTournament(domain.Tournament{
		ID:        uuid.New(),
		Name:      "spring",
		Status:    domain.TournamentOpen,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	block, err := s.CreateBlock(domain.LeagueBlock{
		ID:           uuid.New(),
		TournamentID: tournament.ID,
		Name:         "block a",
		Status:       domain.BlockOpen,
		WinnerSource: string(standings.SourceUnresolved),
		CreatedAt:    time.Now(),
		Roster:       []domain.Player{alice, bob},
	})
	require.NoError(t, err)

	loaded, err := s.GetBlock(block.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Roster, 2)
	assert.Equal(t, uuid.Nil, loaded.WinnerID)

	// finishing without a winner keeps the row readable
	loaded.Status = domain.BlockFinished
	require.NoError(t, s.UpdateBlock(loaded))
	undecided, err := s.GetBlock(block.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BlockFinished, undecided.Status)
	assert.Equal(t, uuid.Nil, undecided.WinnerID)
	assert.Equal(t, string(standings.SourceUnresolved), undecided.WinnerSource)

	match, err := s.Create(domain.Match{
		BlockID:           block.ID,
		Winner:            alice,
		Loser:             bob,
		WinnerScore:       15,
		LoserScore:        3,
		Date:              time.Now(),
		WinnerRatingDelta: 35.2,
		LoserRatingDelta:  -35.2,
	})
	require.NoError(t, err)
	assert.NotZero(t, match.ID)

	blockMatches, err := s.ListBlockMatches(block.ID)
	require.NoError(t, err)
	require.Len(t, blockMatches, 1)
	assert.Equal(t, alice.ID, blockMatches[0].Winner.ID)
	assert.Equal(t, bob.ID, blockMatches[0].Loser.ID)

	undecided.WinnerID = alice.ID
	undecided.WinnerSource = string(standings.SourceStandings)
	require.NoError(t, s.UpdateBlock(undecided))
	decided, err := s.GetBlock(block.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, decided.WinnerID)
	assert.Equal(t, string(standings.SourceStandings), decided.WinnerSource)
}

func TestStorage_RankingConfigRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRankingConfig()
	require.ErrorIs(t, err, storage.ErrNotFound)

	first := rating.Config{
		KFactor:                    24,
		ScoreDiffMultiplier:        0.04,
		HandicapDiffMultiplier:     0.03,
		WinThresholdHandicapChange: 12,
		HandicapChangeAmount:       2,
	}
	require.NoError(t, s.SaveRankingConfig(first))
	got, err := s.GetRankingConfig()
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := first
	second.KFactor = 40
	require.NoError(t, s.SaveRankingConfig(second))
	got, err = s.GetRankingConfig()
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
