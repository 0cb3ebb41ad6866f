package rating

// Config holds the tunable parameters of the rating formula. One row
// exists process-wide; administrators replace it, never delete it.
type Config struct {
	KFactor                   int
	ScoreDiffMultiplier       float64
	HandicapDiffMultiplier    float64
	WinThresholdHandicapChange int
	HandicapChangeAmount      int
}

const (
	minKFactor = 10
	maxKFactor = 64

	minScoreDiffMultiplier = 0.01
	maxScoreDiffMultiplier = 0.1

	minHandicapDiffMultiplier = 0.01
	maxHandicapDiffMultiplier = 0.05

	minWinThresholdHandicapChange = 0
	maxWinThresholdHandicapChange = 50

	minHandicapChangeAmount = -10
	maxHandicapChangeAmount = 10
)

func DefaultConfig() Config {
	return Config{
		KFactor:                    32,
		ScoreDiffMultiplier:        0.05,
		HandicapDiffMultiplier:     0.02,
		WinThresholdHandicapChange: 10,
		HandicapChangeAmount:       1,
	}
}

// Clamp returns a copy with every field forced into its valid range.
// Out-of-range values land on the nearest bound, never an error.
func (c Config) Clamp() Config {
	c.KFactor = clampInt(c.KFactor, minKFactor, maxKFactor)
	c.ScoreDiffMultiplier = clampFloat(c.ScoreDiffMultiplier, minScoreDiffMultiplier, maxScoreDiffMultiplier)
	c.HandicapDiffMultiplier = clampFloat(c.HandicapDiffMultiplier, minHandicapDiffMultiplier, maxHandicapDiffMultiplier)
	c.WinThresholdHandicapChange = clampInt(c.WinThresholdHandicapChange, minWinThresholdHandicapChange, maxWinThresholdHandicapChange)
	c.HandicapChangeAmount = clampInt(c.HandicapChangeAmount, minHandicapChangeAmount, maxHandicapChangeAmount)
	return c
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v float64, min float64, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
