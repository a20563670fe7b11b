package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/location-loader/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetReport получает отчёт загрузки; (nil, nil) если его нет
	GetReport(ctx context.Context, id uuid.UUID) (*domain.ImportReport, error)

	// SetReport сохраняет отчёт загрузки
	SetReport(ctx context.Context, report *domain.ImportReport, ttl time.Duration) error
}
