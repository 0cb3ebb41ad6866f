package rating

import (
	"math"
	"testing"
)

func defaultTestConfig() Config {
	return Config{
		KFactor:                    32,
		ScoreDiffMultiplier:        0.05,
		HandicapDiffMultiplier:     0.02,
		WinThresholdHandicapChange: 10,
		HandicapChangeAmount:       1,
	}
}

func TestCalculate(t *testing.T) {
	type args struct {
		winner      PlayerState
		loser       PlayerState
		winnerScore int
		loserScore  int
		cfg         Config
	}
	tests := []struct {
		name string
		args args
		want Result
	}{
		{
			name: "equal ratings shutout",
			args: args{
				winner:      PlayerState{Rating: 1000, Handicap: 30},
				loser:       PlayerState{Rating: 1000, Handicap: 30},
				winnerScore: 15,
				loserScore:  0,
				cfg:         defaultTestConfig(),
			},
			// base 32*(1-0.5)=16, margin 0.05*15*32=24, gap 0
			want: Result{
				WinnerRating:        1040,
				LoserRating:         960,
				WinnerHandicap:      30,
				LoserHandicap:       31,
				WinnerRatingDelta:   40,
				LoserRatingDelta:    -40,
				WinnerHandicapDelta: 0,
				LoserHandicapDelta:  1,
			},
		},
		{
			name: "close match no handicap change",
			args: args{
				winner:      PlayerState{Rating: 1000, Handicap: 20},
				loser:       PlayerState{Rating: 1000, Handicap: 20},
				winnerScore: 15,
				loserScore:  13,
				cfg:         defaultTestConfig(),
			},
			// base 16, margin 0.05*2*32=3.2, gap 0
			want: Result{
				WinnerRating:      1019.2,
				LoserRating:       980.8,
				WinnerHandicap:    20,
				LoserHandicap:     20,
				WinnerRatingDelta: 19.2,
				LoserRatingDelta:  -19.2,
			},
		},
		{
			name: "beating a stronger handicap pays more",
			args: args{
				winner:      PlayerState{Rating: 1000, Handicap: 30},
				loser:       PlayerState{Rating: 1000, Handicap: 20},
				winnerScore: 15,
				loserScore:  12,
				cfg:         defaultTestConfig(),
			},
			// base 16, margin 0.05*3*32=4.8, gap 0.02*(20-30)*32=-6.4
			want: Result{
				WinnerRating:      1014.4,
				LoserRating:       985.6,
				WinnerHandicap:    30,
				LoserHandicap:     20,
				WinnerRatingDelta: 14.4,
				LoserRatingDelta:  -14.4,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.args.winner, tt.args.loser, tt.args.winnerScore, tt.args.loserScore, tt.args.cfg)
			if !resultsClose(got, tt.want) {
				t.Errorf("Calculate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func resultsClose(a, b Result) bool {
	const eps = 1e-9
	return math.Abs(a.WinnerRating-b.WinnerRating) < eps &&
		math.Abs(a.LoserRating-b.LoserRating) < eps &&
		math.Abs(a.WinnerRatingDelta-b.WinnerRatingDelta) < eps &&
		math.Abs(a.LoserRatingDelta-b.LoserRatingDelta) < eps &&
		a.WinnerHandicap == b.WinnerHandicap &&
		a.LoserHandicap == b.LoserHandicap &&
		a.WinnerHandicapDelta == b.WinnerHandicapDelta &&
		a.LoserHandicapDelta == b.LoserHandicapDelta
}

func TestCalculate_baseTermZeroSum(t *testing.T) {
	// With the margin multiplier at its minimum and a one point margin
	// the corrections are tiny; the base Elo exchange must cancel exactly
	// regardless of the rating gap.
	cfg := defaultTestConfig()
	pairs := []struct {
		winner, loser float64
	}{
		{1000, 1000},
		{1200, 1000},
		{1000, 1200},
		{-50, 2400},
	}
	for _, p := range pairs {
		got := Calculate(
			PlayerState{Rating: p.winner, Handicap: 10},
			PlayerState{Rating: p.loser, Handicap: 10},
			15, 14, cfg,
		)
		sum := got.WinnerRatingDelta + got.LoserRatingDelta
		if math.Abs(sum) > 1e-9 {
			t.Errorf("delta sum = %v for ratings %v/%v, want 0", sum, p.winner, p.loser)
		}
	}
}

func TestCalculate_marginMonotonicity(t *testing.T) {
	cfg := defaultTestConfig()
	winner := PlayerState{Rating: 1100, Handicap: 25}
	loser := PlayerState{Rating: 980, Handicap: 40}
	prev := math.Inf(-1)
	for loserScore := 14; loserScore >= 0; loserScore-- {
		got := Calculate(winner, loser, 15, loserScore, cfg)
		if got.WinnerRatingDelta < prev {
			t.Fatalf("delta decreased to %v at margin %d", got.WinnerRatingDelta, 15-loserScore)
		}
		prev = got.WinnerRatingDelta
	}
}

func TestCalculate_handicapGoesToLoser(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.WinThresholdHandicapChange = 5
	cfg.HandicapChangeAmount = 2

	got := Calculate(
		PlayerState{Rating: 1000, Handicap: 15},
		PlayerState{Rating: 1000, Handicap: 15},
		15, 10, cfg,
	)
	if got.WinnerHandicap != 15 || got.WinnerHandicapDelta != 0 {
		t.Errorf("winner handicap moved: %d (delta %d)", got.WinnerHandicap, got.WinnerHandicapDelta)
	}
	if got.LoserHandicap != 17 || got.LoserHandicapDelta != 2 {
		t.Errorf("loser handicap = %d (delta %d), want 17 (delta 2)", got.LoserHandicap, got.LoserHandicapDelta)
	}

	// one point short of the threshold
	got = Calculate(
		PlayerState{Rating: 1000, Handicap: 15},
		PlayerState{Rating: 1000, Handicap: 15},
		15, 11, cfg,
	)
	if got.LoserHandicapDelta != 0 {
		t.Errorf("handicap changed below threshold: delta %d", got.LoserHandicapDelta)
	}
}

func TestCalculate_idempotent(t *testing.T) {
	cfg := defaultTestConfig()
	winner := PlayerState{Rating: 1234.5, Handicap: 27}
	loser := PlayerState{Rating: 1190.25, Handicap: 33}
	a := Calculate(winner, loser, 15, 7, cfg)
	b := Calculate(winner, loser, 15, 7, cfg)
	if a != b {
		t.Errorf("same inputs produced different results: %+v vs %+v", a, b)
	}
}
