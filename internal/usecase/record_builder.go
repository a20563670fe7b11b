package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/pkg/validator"
)

// ErrMissingLocation - сборщик не вычисляет координаты сам
var ErrMissingLocation = errors.New("reduced location is required")

// RecordBuilder - собирает LocationRecord из объекта и его точки
type RecordBuilder struct {
	defaults domain.RecordDefaults
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewRecordBuilder создает RecordBuilder с системными часами и uuid v4
func NewRecordBuilder(defaults domain.RecordDefaults) *RecordBuilder {
	return &RecordBuilder{
		defaults: defaults,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.New,
	}
}

// WithClock подменяет источник времени
func (b *RecordBuilder) WithClock(now func() time.Time) *RecordBuilder {
	b.now = now
	return b
}

// WithIDGenerator подменяет генератор идентификаторов
func (b *RecordBuilder) WithIDGenerator(newID func() uuid.UUID) *RecordBuilder {
	b.newID = newID
	return b
}

// Build возвращает (nil, false, nil) для объекта без имени: это пропуск, а не ошибка.
func (b *RecordBuilder) Build(f *domain.Feature, loc *domain.ReducedLocation) (*domain.LocationRecord, bool, error) {
	name, ok := f.Name()
	if !ok {
		return nil, false, nil
	}
	if loc == nil {
		return nil, false, ErrMissingLocation
	}

	now := b.now()
	rec := &domain.LocationRecord{
		LocationID:    b.newID(),
		Name:          name,
		Description:   b.defaults.Description,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		LocationType:  b.defaults.LocationType,
		Status:        b.defaults.Status,
		ContributedBy: b.defaults.ContributorID,
		AverageRating: b.defaults.AverageRating,
		ReviewCount:   b.defaults.ReviewCount,
		CreatedAt:     now,
		UpdatedAt:     now,
		DeletedAt:     nil,
	}

	if err := validator.Validate(rec); err != nil {
		return nil, false, fmt.Errorf("invalid location record: %w", err)
	}
	return rec, true, nil
}
