package standings

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Participant is one roster entry of a league block. Placeholder entries
// ("def" byes) keep their matches but can never win the block.
type Participant struct {
	PlayerID    uuid.UUID
	Placeholder bool
}

// Outcome is one completed, scored match inside a block.
type Outcome struct {
	WinnerID    uuid.UUID
	LoserID     uuid.UUID
	WinnerScore int
	LoserScore  int
	PlayedAt    time.Time
}

// Row is one participant's aggregated block record. PointDiff is always
// recomputed from PointsFor and PointsAgainst, never trusted from storage.
type Row struct {
	PlayerID      uuid.UUID
	Wins          int
	Losses        int
	PointsFor     int
	PointsAgainst int
	PointDiff     int
	Rank          int
}

// WinnerSource records where a resolved winner came from.
type WinnerSource string

const (
	SourceExplicit   WinnerSource = "explicit"
	SourceStandings  WinnerSource = "standings"
	SourceMatches    WinnerSource = "matches"
	SourceUnresolved WinnerSource = "unresolved"
)

type Result struct {
	Rows     []Row
	WinnerID uuid.UUID // uuid.Nil until resolved
	Source   WinnerSource
}

// Resolve aggregates a block's match outcomes into ranked standings and
// infers a single winner when the data allows it. An unresolved winner is
// a normal terminal state, not an error; callers display it as "not yet
// determined". Pure function, safe for concurrent use.
//
// Matches must already be scoped to the block. When the same pair has
// been scored more than once (a corrected re-submission) only the latest
// row by PlayedAt counts. Tie order among equal rows follows roster
// order, so callers wanting reproducible output pass a deterministically
// ordered roster.
func Resolve(matches []Outcome, roster []Participant, explicitWinner uuid.UUID, finished bool) Result {
	if len(roster) < 2 {
		return Result{Rows: []Row{}, Source: SourceUnresolved}
	}

	deduped := dedupe(matches)
	rows := aggregate(deduped, roster)
	sortRows(rows)
	assignRanks(rows)

	res := Result{Rows: rows, Source: SourceUnresolved}

	if explicitWinner != uuid.Nil {
		res.WinnerID = explicitWinner
		res.Source = SourceExplicit
		return res
	}

	n := len(roster)
	expected := n * (n - 1) / 2
	if len(deduped) < expected && !finished {
		return res
	}

	placeholders := make(map[uuid.UUID]bool, len(roster))
	for _, p := range roster {
		if p.Placeholder {
			placeholders[p.PlayerID] = true
		}
	}

	if id, ok := winnerFromRows(rows, placeholders); ok {
		res.WinnerID = id
		res.Source = SourceStandings
		return res
	}
	if id, ok := winnerFromMatches(deduped, placeholders); ok {
		res.WinnerID = id
		res.Source = SourceMatches
		return res
	}
	return res
}

type pairKey struct {
	a uuid.UUID
	b uuid.UUID
}

func keyFor(a, b uuid.UUID) pairKey {
	if b.String() < a.String() {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// dedupe drops malformed rows and keeps only the latest submission per
// unordered player pair. On equal timestamps the later input row wins,
// matching storage order (insertion id ascending).
func dedupe(matches []Outcome) []Outcome {
	latest := make(map[pairKey]Outcome)
	order := make([]pairKey, 0, len(matches))
	for _, m := range matches {
		if m.WinnerID == uuid.Nil || m.LoserID == uuid.Nil || m.WinnerID == m.LoserID {
			continue
		}
		if m.WinnerScore < 0 || m.LoserScore < 0 || m.WinnerScore <= m.LoserScore {
			continue
		}
		key := keyFor(m.WinnerID, m.LoserID)
		prev, ok := latest[key]
		if !ok {
			order = append(order, key)
		}
		if !ok || !m.PlayedAt.Before(prev.PlayedAt) {
			latest[key] = m
		}
	}
	deduped := make([]Outcome, 0, len(latest))
	for _, key := range order {
		deduped = append(deduped, latest[key])
	}
	return deduped
}

func aggregate(matches []Outcome, roster []Participant) []Row {
	rows := make([]Row, 0, len(roster))
	index := make(map[uuid.UUID]*Row, len(roster))
	for _, p := range roster {
		rows = append(rows, Row{PlayerID: p.PlayerID})
	}
	for i := range rows {
		index[rows[i].PlayerID] = &rows[i]
	}
	for _, m := range matches {
		winner, ok := index[m.WinnerID]
		if !ok {
			continue
		}
		loser, ok := index[m.LoserID]
		if !ok {
			continue
		}
		winner.Wins++
		winner.PointsFor += m.WinnerScore
		winner.PointsAgainst += m.LoserScore
		loser.Losses++
		loser.PointsFor += m.LoserScore
		loser.PointsAgainst += m.WinnerScore
	}
	for i := range rows {
		rows[i].PointDiff = rows[i].PointsFor - rows[i].PointsAgainst
	}
	return rows
}

func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].PointDiff != rows[j].PointDiff {
			return rows[i].PointDiff > rows[j].PointDiff
		}
		return rows[i].PointsFor > rows[j].PointsFor
	})
}

// assignRanks numbers rows sequentially from 1, except in the degenerate
// state where nothing has distinguished anyone yet: then every row shows
// rank 1 instead of a misleading 1/2/3.
func assignRanks(rows []Row) {
	if len(rows) == 0 {
		return
	}
	undecided := true
	for _, r := range rows {
		if r.Wins != rows[0].Wins || r.Losses != rows[0].Losses || r.PointDiff != 0 {
			undecided = false
			break
		}
	}
	for i := range rows {
		if undecided {
			rows[i].Rank = 1
		} else {
			rows[i].Rank = i + 1
		}
	}
}

// winnerFromRows picks the top non-placeholder row unless another row
// shares its wins and point differential.
func winnerFromRows(rows []Row, placeholders map[uuid.UUID]bool) (uuid.UUID, bool) {
	candidates := make([]Row, 0, len(rows))
	for _, r := range rows {
		if placeholders[r.PlayerID] {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return uuid.Nil, false
	}
	top := candidates[0]
	for _, r := range candidates[1:] {
		if r.Wins == top.Wins && r.PointDiff == top.PointDiff {
			return uuid.Nil, false
		}
	}
	return top.PlayerID, true
}

// winnerFromMatches rebuilds per-player records straight from match rows,
// ignoring the roster, and picks the top player unless tied on all three
// sort keys.
func winnerFromMatches(matches []Outcome, placeholders map[uuid.UUID]bool) (uuid.UUID, bool) {
	index := make(map[uuid.UUID]*Row)
	order := make([]uuid.UUID, 0, len(matches)*2)
	row := func(id uuid.UUID) *Row {
		r, ok := index[id]
		if !ok {
			r = &Row{PlayerID: id}
			index[id] = r
			order = append(order, id)
		}
		return r
	}
	for _, m := range matches {
		if placeholders[m.WinnerID] || placeholders[m.LoserID] {
			continue
		}
		winner := row(m.WinnerID)
		loser := row(m.LoserID)
		winner.Wins++
		winner.PointsFor += m.WinnerScore
		winner.PointsAgainst += m.LoserScore
		loser.Losses++
		loser.PointsFor += m.LoserScore
		loser.PointsAgainst += m.WinnerScore
	}
	rows := make([]Row, 0, len(order))
	for _, id := range order {
		r := index[id]
		r.PointDiff = r.PointsFor - r.PointsAgainst
		rows = append(rows, *r)
	}
	if len(rows) == 0 {
		return uuid.Nil, false
	}
	sortRows(rows)
	top := rows[0]
	for _, r := range rows[1:] {
		if r.Wins == top.Wins && r.PointDiff == top.PointDiff && r.PointsFor == top.PointsFor {
			return uuid.Nil, false
		}
	}
	return top.PlayerID, true
}
