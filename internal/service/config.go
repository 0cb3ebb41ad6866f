package service

import (
	"errors"

	"clubserver/internal/cache/mem"
	"clubserver/internal/rating"
	"clubserver/internal/storage"

	"github.com/sirupsen/logrus"
)

// ConfigService exposes the single ranking config row. Values are
// clamped on every path in and out; out-of-range input is corrected
// silently, never rejected.
type ConfigService struct {
	configStorage storage.ConfigStorage
	cache         *mem.Cache
	log           *logrus.Entry
}

func NewConfigService(configStorage storage.ConfigStorage, cache *mem.Cache, log *logrus.Logger) *ConfigService {
	return &ConfigService{
		configStorage: configStorage,
		cache:         cache,
		log:           log.WithField("name", "config_service"),
	}
}

func (s *ConfigService) Get() (rating.Config, error) {
	if cfg, ok := s.cache.GetConfig(); ok {
		return cfg, nil
	}
	cfg, err := s.configStorage.GetRankingConfig()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			cfg = rating.DefaultConfig()
		} else {
			return rating.Config{}, err
		}
	}
	cfg = cfg.Clamp()
	s.cache.SetConfig(cfg)
	return cfg, nil
}

func (s *ConfigService) Update(cfg rating.Config) (rating.Config, error) {
	cfg = cfg.Clamp()
	if err := s.configStorage.SaveRankingConfig(cfg); err != nil {
		return rating.Config{}, err
	}
	s.cache.SetConfig(cfg)
	s.log.WithField("config", cfg).Info("ranking config updated")
	return cfg, nil
}
