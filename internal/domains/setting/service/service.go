package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/setting/model"
	"frontdesk/internal/domains/setting/model/dto"
	"frontdesk/internal/domains/setting/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSetting = "setting:get"
)

type Setting interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (model.Settings, error)
	EnsureDefaults(ctx context.Context, defaults model.Settings) (created bool, err error)
	// Invalidate drops cached settings after the store was changed underneath the service.
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the primary settings record. A store without settings yields an empty
// record (tax rate 0) rather than an error.
func (s *serviceImpl) Get(ctx context.Context) (res model.Settings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSetting")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetSetting, model.PrimaryID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for settings")

		return res, nil
	}

	res, err = s.repo.Get(ctx, model.PrimaryID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	if res.ID == constant.Empty {
		log.Warn().Msg("settings not found, using empty settings")

		return model.Settings{ID: model.PrimaryID}, nil
	}

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to cache settings")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (res model.Settings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSetting")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res = req.ToModel()

	if err = s.repo.Put(ctx, res); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return res, fmt.Errorf("failed to update settings: %w", err)
	}

	if cacheErr := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetSetting, model.PrimaryID)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to drop cached settings")
	}

	return res, nil
}

// EnsureDefaults stores defaults as the primary settings when none exist yet.
func (s *serviceImpl) EnsureDefaults(ctx context.Context, defaults model.Settings) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureDefaultSetting")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current, err := s.repo.Get(ctx, model.PrimaryID)
	if err != nil {
		return false, fmt.Errorf("failed to get settings: %w", err)
	}

	if current.ID != constant.Empty {
		return false, nil
	}

	defaults.ID = model.PrimaryID

	if err = s.repo.Put(ctx, defaults); err != nil {
		log.Error().Err(err).Msg("failed to store default settings")

		return false, fmt.Errorf("failed to store default settings: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetSetting)
	log.Info().Str("name", defaults.Name).Msg("default settings stored")

	return true, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetSetting)
}
