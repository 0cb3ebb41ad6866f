package standings

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	playerA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	playerB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	playerC = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	playerD = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	byeDef  = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func roster(ids ...uuid.UUID) []Participant {
	rs := make([]Participant, 0, len(ids))
	for _, id := range ids {
		rs = append(rs, Participant{PlayerID: id, Placeholder: id == byeDef})
	}
	return rs
}

func at(minute int) time.Time {
	return time.Date(2024, 3, 1, 12, minute, 0, 0, time.UTC)
}

func TestResolve_roundRobin(t *testing.T) {
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 8, PlayedAt: at(1)},
		{WinnerID: playerA, LoserID: playerC, WinnerScore: 15, LoserScore: 3, PlayedAt: at(2)},
		{WinnerID: playerB, LoserID: playerC, WinnerScore: 15, LoserScore: 10, PlayedAt: at(3)},
	}
	got := Resolve(matches, roster(playerA, playerB, playerC), uuid.Nil, false)

	if got.WinnerID != playerA || got.Source != SourceStandings {
		t.Errorf("winner = %v (%v), want %v from standings", got.WinnerID, got.Source, playerA)
	}
	want := []Row{
		{PlayerID: playerA, Wins: 2, PointsFor: 30, PointsAgainst: 11, PointDiff: 19, Rank: 1},
		{PlayerID: playerB, Wins: 1, Losses: 1, PointsFor: 23, PointsAgainst: 25, PointDiff: -2, Rank: 2},
		{PlayerID: playerC, Losses: 2, PointsFor: 13, PointsAgainst: 30, PointDiff: -17, Rank: 3},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %+v, want %+v", got.Rows, want)
	}
}

func TestResolve_oneWinOneLossPerMatch(t *testing.T) {
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 8, PlayedAt: at(1)},
		{WinnerID: playerC, LoserID: playerA, WinnerScore: 15, LoserScore: 14, PlayedAt: at(2)},
		{WinnerID: playerB, LoserID: playerC, WinnerScore: 15, LoserScore: 0, PlayedAt: at(3)},
	}
	got := Resolve(matches, roster(playerA, playerB, playerC), uuid.Nil, false)
	var wins, losses int
	for _, r := range got.Rows {
		wins += r.Wins
		losses += r.Losses
	}
	if wins != len(matches) || losses != len(matches) {
		t.Errorf("sum(wins)=%d sum(losses)=%d, want %d each", wins, losses, len(matches))
	}
}

func TestResolve_correctedResubmission(t *testing.T) {
	corrected := []Outcome{
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 10, PlayedAt: at(1)},
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 5, PlayedAt: at(9)},
	}
	onlyLatest := corrected[1:]

	got := Resolve(corrected, roster(playerA, playerB), uuid.Nil, false)
	want := Resolve(onlyLatest, roster(playerA, playerB), uuid.Nil, false)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedup output %+v, want same as latest-only %+v", got, want)
	}
	if got.Rows[0].PlayerID != playerA || got.Rows[0].PointsFor != 15 || got.Rows[0].PointsAgainst != 5 {
		t.Errorf("aggregation used superseded row: %+v", got.Rows[0])
	}
	// the order of the corrected pair must not matter once timestamps differ
	reversed := []Outcome{corrected[1], corrected[0]}
	if got2 := Resolve(reversed, roster(playerA, playerB), uuid.Nil, false); !reflect.DeepEqual(got2, want) {
		t.Errorf("dedup depends on input order: %+v", got2)
	}
}

func TestResolve_explicitWinnerOverride(t *testing.T) {
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 2, PlayedAt: at(1)},
	}
	got := Resolve(matches, roster(playerA, playerB), playerB, false)
	if got.WinnerID != playerB || got.Source != SourceExplicit {
		t.Errorf("winner = %v (%v), want explicit %v", got.WinnerID, got.Source, playerB)
	}
}

func TestResolve_noMatchesAllRankOne(t *testing.T) {
	got := Resolve(nil, roster(playerA, playerB, playerC), uuid.Nil, false)
	if len(got.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(got.Rows))
	}
	for _, r := range got.Rows {
		if r.Rank != 1 {
			t.Errorf("rank for %v = %d, want 1", r.PlayerID, r.Rank)
		}
	}
	if got.WinnerID != uuid.Nil || got.Source != SourceUnresolved {
		t.Errorf("winner = %v (%v), want unresolved", got.WinnerID, got.Source)
	}
}

func TestResolve_incompleteBlockNotResolved(t *testing.T) {
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 1, PlayedAt: at(1)},
	}
	got := Resolve(matches, roster(playerA, playerB, playerC), uuid.Nil, false)
	if got.Source != SourceUnresolved {
		t.Errorf("resolved %v from incomplete block", got.WinnerID)
	}
	// the external finished flag forces resolution with the same data
	got = Resolve(matches, roster(playerA, playerB, playerC), uuid.Nil, true)
	if got.WinnerID != playerA {
		t.Errorf("winner = %v (%v), want %v once marked finished", got.WinnerID, got.Source, playerA)
	}
}

func TestResolve_topTieUnresolved(t *testing.T) {
	// A and B both 1-0 with identical point diff and points for
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerC, WinnerScore: 15, LoserScore: 10, PlayedAt: at(1)},
		{WinnerID: playerB, LoserID: playerD, WinnerScore: 15, LoserScore: 10, PlayedAt: at(2)},
	}
	got := Resolve(matches, roster(playerA, playerB, playerC, playerD), uuid.Nil, true)
	if got.WinnerID != uuid.Nil || got.Source != SourceUnresolved {
		t.Errorf("winner = %v (%v), want unresolved tie", got.WinnerID, got.Source)
	}
}

func TestResolve_placeholderNeverWins(t *testing.T) {
	// the bye entry sweeps its games but cannot take the block
	matches := []Outcome{
		{WinnerID: byeDef, LoserID: playerA, WinnerScore: 15, LoserScore: 0, PlayedAt: at(1)},
		{WinnerID: byeDef, LoserID: playerB, WinnerScore: 15, LoserScore: 0, PlayedAt: at(2)},
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 9, PlayedAt: at(3)},
	}
	got := Resolve(matches, roster(playerA, playerB, byeDef), uuid.Nil, false)
	if got.WinnerID != playerA {
		t.Errorf("winner = %v (%v), want %v", got.WinnerID, got.Source, playerA)
	}
}

func TestResolve_degenerateRosters(t *testing.T) {
	for _, rs := range [][]Participant{nil, roster(playerA)} {
		got := Resolve(nil, rs, uuid.Nil, true)
		if len(got.Rows) != 0 || got.WinnerID != uuid.Nil || got.Source != SourceUnresolved {
			t.Errorf("Resolve(roster len %d) = %+v, want empty unresolved", len(rs), got)
		}
	}
}

func TestResolve_skipsMalformedRows(t *testing.T) {
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerA, WinnerScore: 15, LoserScore: 0, PlayedAt: at(1)},
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 3, LoserScore: 15, PlayedAt: at(2)},
		{WinnerID: uuid.Nil, LoserID: playerB, WinnerScore: 15, LoserScore: 0, PlayedAt: at(3)},
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: -1, PlayedAt: at(4)},
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 11, PlayedAt: at(5)},
	}
	got := Resolve(matches, roster(playerA, playerB), uuid.Nil, false)
	want := Resolve(matches[4:], roster(playerA, playerB), uuid.Nil, false)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("malformed rows affected output: %+v vs %+v", got, want)
	}
}

func TestResolve_idempotent(t *testing.T) {
	matches := []Outcome{
		{WinnerID: playerA, LoserID: playerB, WinnerScore: 15, LoserScore: 12, PlayedAt: at(1)},
		{WinnerID: playerC, LoserID: playerA, WinnerScore: 15, LoserScore: 13, PlayedAt: at(2)},
		{WinnerID: playerC, LoserID: playerB, WinnerScore: 15, LoserScore: 6, PlayedAt: at(3)},
	}
	rs := roster(playerA, playerB, playerC)
	a := Resolve(matches, rs, uuid.Nil, false)
	b := Resolve(matches, rs, uuid.Nil, false)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same inputs produced different results: %+v vs %+v", a, b)
	}
}
