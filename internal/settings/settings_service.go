package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	settingserrors "aakb-wms/internal/settings/errors"
	"aakb-wms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	SettingKeyPrefix = "settings:"
	cacheTTL         = 10 * time.Minute
	// bounds how long a stale kiosk fingerprint can gate check-in
	kioskCacheTTL = 30 * time.Second
	// cached for keys with no row so unregistered-kiosk lookups stay off the database
	absentMarker = "\x00absent"
)

func GetSettingCacheKey(key string) string {
	return SettingKeyPrefix + key
}

func cacheTTLFor(key string) time.Duration {
	if key == KeyKioskDeviceID {
		return kioskCacheTTL
	}
	return cacheTTL
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]SettingResponse, error)
	Set(ctx context.Context, actorID, key, value string) (SettingResponse, error)
	Value(ctx context.Context, key string) (string, bool, error)

	KioskDeviceID(ctx context.Context) (string, bool, error)
	RegisterKiosk(ctx context.Context, actorID, deviceID string) error
	ClearKiosk(ctx context.Context, actorID string) error
	OverseerPhone(ctx context.Context) (string, bool, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) List(ctx context.Context) ([]SettingResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list settings failed", zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	resp := make([]SettingResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Set(ctx context.Context, actorID, key, value string) (SettingResponse, error) {
	if _, ok := knownKeys[key]; !ok {
		s.logger.Warn("set setting unknown key", zap.String("key", key))
		return SettingResponse{}, settingserrors.ErrUnknownKey
	}

	row := &Setting{
		Key:       key,
		Value:     strings.TrimSpace(value),
		UpdatedAt: time.Now().UTC(),
	}
	if id, err := uuid.Parse(actorID); err == nil {
		row.UpdatedBy = &id
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("set setting persist failed", zap.String("key", key), zap.Error(err))
		return SettingResponse{}, apperror.StoreUnavailable(err)
	}
	if err := s.invalidate(ctx, key); err != nil {
		return SettingResponse{}, err
	}

	s.logger.Info("set setting success", zap.String("key", key), zap.String("actor_id", actorID))
	return mapToResponse(*row), nil
}

// Value returns the setting, reading through the Redis cache. Cache errors
// fall back to the database.
func (s *service) Value(ctx context.Context, key string) (string, bool, error) {
	cacheKey := GetSettingCacheKey(key)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if cached == absentMarker {
				return "", false, nil
			}
			return cached, true, nil
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		row, err := s.repo.Get(ctx, key)
		cached := absentMarker
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			s.logger.Error("read setting failed", zap.String("key", key), zap.Error(err))
			return nil, apperror.StoreUnavailable(err)
		default:
			cached = row.Value
		}

		if s.rdb != nil {
			if err := s.rdb.Set(ctx, cacheKey, cached, cacheTTLFor(key)).Err(); err != nil {
				s.logger.Warn("cache setting failed", zap.String("key", key), zap.Error(err))
			}
		}
		return cached, nil
	})
	if err != nil {
		return "", false, err
	}

	value := v.(string)
	if value == absentMarker {
		return "", false, nil
	}
	return value, true, nil
}

func (s *service) KioskDeviceID(ctx context.Context) (string, bool, error) {
	id, ok, err := s.Value(ctx, KeyKioskDeviceID)
	if err != nil || !ok || id == "" {
		return "", false, err
	}
	return id, true, nil
}

func (s *service) RegisterKiosk(ctx context.Context, actorID, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return settingserrors.ErrEmptyDeviceID
	}
	if _, err := s.Set(ctx, actorID, KeyKioskDeviceID, deviceID); err != nil {
		return err
	}
	s.logger.Info("kiosk registered", zap.String("actor_id", actorID))
	return nil
}

func (s *service) ClearKiosk(ctx context.Context, actorID string) error {
	if err := s.repo.Delete(ctx, KeyKioskDeviceID); err != nil {
		s.logger.Error("clear kiosk failed", zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	if err := s.invalidate(ctx, KeyKioskDeviceID); err != nil {
		return err
	}
	s.logger.Info("kiosk cleared", zap.String("actor_id", actorID))
	return nil
}

func (s *service) OverseerPhone(ctx context.Context) (string, bool, error) {
	phone, ok, err := s.Value(ctx, KeyOverseerPhone)
	if err != nil || !ok || phone == "" {
		return "", false, err
	}
	return phone, true, nil
}

// invalidate drops the cached value. The row is already written, so a
// failure is reported to the caller, who can retry the idempotent write.
func (s *service) invalidate(ctx context.Context, key string) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, GetSettingCacheKey(key)).Err(); err != nil {
		s.logger.Error("invalidate setting cache failed", zap.String("key", key), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	return nil
}

func mapToResponse(s Setting) SettingResponse {
	resp := SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
	if s.UpdatedBy != nil {
		id := s.UpdatedBy.String()
		resp.UpdatedBy = &id
	}
	return resp
}
