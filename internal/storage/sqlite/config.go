package sqlite

import (
	"errors"
	"time"

	"clubserver/gen/model"
	"clubserver/gen/table"
	"clubserver/internal/rating"
	"clubserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

const rankingConfigRowID = 1

// GetRankingConfig clamps on read so hand-edited rows can never leak
// out-of-range values into a calculation.
func (s *Storage) GetRankingConfig() (rating.Config, error) {
	var row model.RankingConfig
	err := table.RankingConfig.
		SELECT(table.RankingConfig.AllColumns).
		FROM(table.RankingConfig).
		WHERE(table.RankingConfig.ID.EQ(sqlite.Int(rankingConfigRowID))).
		Query(s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return rating.Config{}, storage.ErrNotFound
		}
		return rating.Config{}, err
	}
	cfg := rating.Config{
		KFactor:                    int(row.KFactor),
		ScoreDiffMultiplier:        row.ScoreDiffMultiplier,
		HandicapDiffMultiplier:     row.HandicapDiffMultiplier,
		WinThresholdHandicapChange: int(row.WinThresholdHandicapChange),
		HandicapChangeAmount:       int(row.HandicapChangeAmount),
	}
	return cfg.Clamp(), nil
}

func (s *Storage) SaveRankingConfig(cfg rating.Config) error {
	cfg = cfg.Clamp()
	row := model.RankingConfig{
		ID:                         rankingConfigRowID,
		KFactor:                    int32(cfg.KFactor),
		ScoreDiffMultiplier:        cfg.ScoreDiffMultiplier,
		HandicapDiffMultiplier:     cfg.HandicapDiffMultiplier,
		WinThresholdHandicapChange: int32(cfg.WinThresholdHandicapChange),
		HandicapChangeAmount:       int32(cfg.HandicapChangeAmount),
		UpdatedAt:                  time.Now(),
	}
	_, err := table.RankingConfig.
		INSERT(table.RankingConfig.AllColumns).
		MODEL(row).
		ON_CONFLICT(table.RankingConfig.ID).
		DO_UPDATE(sqlite.SET(
			table.RankingConfig.KFactor.SET(table.RankingConfig.EXCLUDED.KFactor),
			table.RankingConfig.ScoreDiffMultiplier.SET(table.RankingConfig.EXCLUDED.ScoreDiffMultiplier),
			table.RankingConfig.HandicapDiffMultiplier.SET(table.RankingConfig.EXCLUDED.HandicapDiffMultiplier),
			table.RankingConfig.WinThresholdHandicapChange.SET(table.RankingConfig.EXCLUDED.WinThresholdHandicapChange),
			table.RankingConfig.HandicapChangeAmount.SET(table.RankingConfig.EXCLUDED.HandicapChangeAmount),
			table.RankingConfig.UpdatedAt.SET(table.RankingConfig.EXCLUDED.UpdatedAt),
		)).
		Exec(s.db)
	return err
}
