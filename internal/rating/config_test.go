package rating

import "testing"

func TestConfig_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "in range is untouched",
			in: Config{
				KFactor:                    32,
				ScoreDiffMultiplier:        0.05,
				HandicapDiffMultiplier:     0.02,
				WinThresholdHandicapChange: 10,
				HandicapChangeAmount:       -3,
			},
			want: Config{
				KFactor:                    32,
				ScoreDiffMultiplier:        0.05,
				HandicapDiffMultiplier:     0.02,
				WinThresholdHandicapChange: 10,
				HandicapChangeAmount:       -3,
			},
		},
		{
			name: "everything below range",
			in: Config{
				KFactor:                    0,
				ScoreDiffMultiplier:        -1,
				HandicapDiffMultiplier:     0,
				WinThresholdHandicapChange: -5,
				HandicapChangeAmount:       -100,
			},
			want: Config{
				KFactor:                    10,
				ScoreDiffMultiplier:        0.01,
				HandicapDiffMultiplier:     0.01,
				WinThresholdHandicapChange: 0,
				HandicapChangeAmount:       -10,
			},
		},
		{
			name: "everything above range",
			in: Config{
				KFactor:                    1000,
				ScoreDiffMultiplier:        2,
				HandicapDiffMultiplier:     1,
				WinThresholdHandicapChange: 99,
				HandicapChangeAmount:       99,
			},
			want: Config{
				KFactor:                    64,
				ScoreDiffMultiplier:        0.1,
				HandicapDiffMultiplier:     0.05,
				WinThresholdHandicapChange: 50,
				HandicapChangeAmount:       10,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(); got != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", got, tt.want)
			}
			// clamping is idempotent
			if got := tt.in.Clamp().Clamp(); got != tt.want {
				t.Errorf("Clamp().Clamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_inRange(t *testing.T) {
	def := DefaultConfig()
	if def != def.Clamp() {
		t.Errorf("default config is out of range: %+v", def)
	}
}
