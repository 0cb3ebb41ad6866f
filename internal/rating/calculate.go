package rating

import "math"

// PlayerState is one player's rating-relevant state right before a match
// is scored. The calculator only ever sees copies.
type PlayerState struct {
	Rating   float64
	Handicap int
}

// Result carries both final values and deltas so callers can show users
// how much each match moved them.
type Result struct {
	WinnerRating   float64
	LoserRating    float64
	WinnerHandicap int
	LoserHandicap  int

	WinnerRatingDelta   float64
	LoserRatingDelta    float64
	WinnerHandicapDelta int
	LoserHandicapDelta  int
}

// Calculate produces both players' post-match rating and handicap.
// The rating delta is a standard Elo adjustment plus two corrections:
// a margin-of-victory term and a handicap-gap term, both scaled by the
// K-factor and mirrored for the loser. A loss by at least
// WinThresholdHandicapChange points moves the loser's handicap by
// HandicapChangeAmount; the winner's handicap never changes.
//
// Pure function of its inputs, never fails. Ratings are not clamped,
// negative values are allowed.
func Calculate(winner PlayerState, loser PlayerState, winnerScore int, loserScore int, cfg Config) Result {
	cfg = cfg.Clamp()
	k := float64(cfg.KFactor)

	expected := 1.0 / (1.0 + math.Pow(10, (loser.Rating-winner.Rating)/400.0))
	base := k * (1.0 - expected)

	margin := cfg.ScoreDiffMultiplier * float64(winnerScore-loserScore) * k
	gap := cfg.HandicapDiffMultiplier * float64(loser.Handicap-winner.Handicap) * k

	winnerDelta := base + margin + gap
	loserDelta := -winnerDelta

	res := Result{
		WinnerRating:      winner.Rating + winnerDelta,
		LoserRating:       loser.Rating + loserDelta,
		WinnerHandicap:    winner.Handicap,
		LoserHandicap:     loser.Handicap,
		WinnerRatingDelta: winnerDelta,
		LoserRatingDelta:  loserDelta,
	}

	if winnerScore-loserScore >= cfg.WinThresholdHandicapChange {
		res.LoserHandicapDelta = cfg.HandicapChangeAmount
		res.LoserHandicap += cfg.HandicapChangeAmount
	}
	return res
}
