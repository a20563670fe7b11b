package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const reportKeyPrefix = "import:report:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.ImportReport, error) {
	data, err := r.Get(ctx, ReportKey(id))
	if err != nil || data == nil {
		return nil, err
	}

	var report domain.ImportReport
	if err := json.Unmarshal(data, &report); err != nil {
		r.logger.Warn("Failed to unmarshal cached report", zap.String("report_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("cache decode error: %w", err)
	}
	return &report, nil
}

func (r *cacheRepository) SetReport(ctx context.Context, report *domain.ImportReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("cache encode error: %w", err)
	}
	return r.Set(ctx, ReportKey(report.ID), data, ttl)
}

// ReportKey - ключ отчёта загрузки в Redis
func ReportKey(id uuid.UUID) string {
	return reportKeyPrefix + id.String()
}
