package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/domain/repository"
	apperrors "github.com/location-loader/internal/pkg/errors"
	"go.uber.org/zap"
)

// LocationUseCase - чтение загруженных локаций
type LocationUseCase struct {
	locationRepo repository.LocationRepository
	logger       *zap.Logger
}

func NewLocationUseCase(locationRepo repository.LocationRepository, logger *zap.Logger) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// GetByID возвращает локацию по строковому uuid
func (uc *LocationUseCase) GetByID(ctx context.Context, rawID string) (*domain.LocationRecord, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperrors.ErrInvalidID.WithDetails(map[string]interface{}{"id": rawID})
	}

	rec, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		uc.logger.Error("Failed to get location", zap.String("location_id", rawID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return rec, nil
}
