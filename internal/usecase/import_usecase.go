package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/domain/repository"
	"github.com/location-loader/internal/geometry"
	apperrors "github.com/location-loader/internal/pkg/errors"
	"github.com/location-loader/internal/pkg/utils"
	"github.com/location-loader/internal/pkg/validator"
	"github.com/location-loader/internal/usecase/dto"
	"go.uber.org/zap"
)

// ErrNoLocationStore - запись без хранилища возможна только в dry run
var ErrNoLocationStore = errors.New("location store is not configured")

// ImportUseCase - загрузка GeoJSON объектов в таблицу locations.
// Объекты обрабатываются строго последовательно; ошибка одного объекта
// попадает в отчёт и не прерывает остальные.
type ImportUseCase struct {
	locationRepo repository.LocationRepository
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	builder      *RecordBuilder
	logger       *zap.Logger
	reportTTL    time.Duration
}

// NewImportUseCase создает ImportUseCase. streamRepo и cacheRepo могут быть nil.
func NewImportUseCase(
	locationRepo repository.LocationRepository,
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	builder *RecordBuilder,
	logger *zap.Logger,
	reportTTL time.Duration,
) *ImportUseCase {
	return &ImportUseCase{
		locationRepo: locationRepo,
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		builder:      builder,
		logger:       logger,
		reportTTL:    reportTTL,
	}
}

// Import обрабатывает коллекцию целиком. Ошибка возвращается только когда
// прогон не удалось начать или зафиксировать; отчёт при этом всё равно заполнен.
func (uc *ImportUseCase) Import(ctx context.Context, req dto.ImportRequest) (*domain.ImportReport, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, validator.ToAppError(err)
	}

	features := req.Collection.Features
	report := &domain.ImportReport{
		ID:        uuid.New(),
		Source:    req.Source,
		DryRun:    req.DryRun,
		Total:     len(features),
		StartedAt: time.Now().UTC(),
		Results:   make([]domain.FeatureResult, 0, len(features)),
	}

	log := uc.logger.With(
		zap.String("import_id", report.ID.String()),
		zap.String("source", req.Source),
		zap.Bool("dry_run", req.DryRun),
	)
	log.Info("Import started", zap.Int("features", len(features)))

	var batch repository.LocationBatch
	if !req.DryRun {
		if uc.locationRepo == nil {
			return nil, ErrNoLocationStore
		}
		var err error
		batch, err = uc.locationRepo.Begin(ctx)
		if err != nil {
			log.Error("Failed to open location batch", zap.Error(err))
			return nil, err
		}
		defer func() {
			if err := batch.Close(); err != nil {
				log.Error("Failed to release location batch", zap.Error(err))
			}
		}()
	}

	var written []*domain.LocationRecord
	for i := range features {
		if err := ctx.Err(); err != nil {
			log.Warn("Import aborted", zap.Int("processed", i), zap.Error(err))
			uc.finish(ctx, report)
			return report, fmt.Errorf("import aborted after %d features: %w", i, err)
		}

		result, rec := uc.processFeature(ctx, log, i, &features[i], batch)
		report.Results = append(report.Results, result)
		if rec != nil && result.Status == domain.FeatureInserted {
			written = append(written, rec)
		}
	}

	if batch != nil {
		if err := batch.Finalize(); err != nil {
			log.Error("Failed to commit import", zap.Int("records", len(written)), zap.Error(err))
			markUncommitted(report, err)
			uc.finish(ctx, report)
			uc.publishCompleted(ctx, report)
			return report, err
		}
		report.Committed = true
	}

	uc.finish(ctx, report)
	log.Info("Import finished",
		zap.Int("total", report.Total),
		zap.Int("inserted", report.Inserted),
		zap.Int("built", report.Built),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)

	if report.Committed {
		uc.publishLoaded(ctx, report.ID, written)
		uc.publishCompleted(ctx, report)
	}

	return report, nil
}

// GetReport возвращает сохранённый отчёт загрузки
func (uc *ImportUseCase) GetReport(ctx context.Context, id uuid.UUID) (*domain.ImportReport, error) {
	if uc.cacheRepo == nil {
		return nil, apperrors.ErrReportNotFound
	}

	report, err := uc.cacheRepo.GetReport(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get import report", zap.String("report_id", id.String()), zap.Error(err))
		return nil, apperrors.ErrCacheError
	}
	if report == nil {
		return nil, apperrors.ErrReportNotFound
	}
	return report, nil
}

func (uc *ImportUseCase) processFeature(
	ctx context.Context,
	log *zap.Logger,
	index int,
	f *domain.Feature,
	batch repository.LocationBatch,
) (domain.FeatureResult, *domain.LocationRecord) {
	result := domain.FeatureResult{Index: index}

	name, ok := f.Name()
	if !ok {
		log.Debug("Feature skipped: no name", zap.Int("index", index))
		result.Status = domain.FeatureSkipped
		return result, nil
	}
	result.Name = name

	loc, err := geometry.Reduce(f.Geometry)
	if err != nil {
		log.Warn("Feature failed: malformed geometry",
			zap.Int("index", index),
			zap.String("name", name),
			zap.Error(err))
		return failed(result, err), nil
	}

	if !utils.ValidateCoordinates(loc.Latitude, loc.Longitude) {
		log.Warn("Reduced coordinates outside WGS84 range",
			zap.Int("index", index),
			zap.String("name", name),
			zap.Float64("lat", loc.Latitude),
			zap.Float64("lon", loc.Longitude))
	}

	rec, ok, err := uc.builder.Build(f, &loc)
	if err != nil {
		log.Warn("Feature failed: record not built",
			zap.Int("index", index),
			zap.String("name", name),
			zap.Error(err))
		return failed(result, err), nil
	}
	if !ok {
		result.Status = domain.FeatureSkipped
		return result, nil
	}

	result.LocationID = &rec.LocationID
	result.Latitude = &rec.Latitude
	result.Longitude = &rec.Longitude

	if batch == nil {
		result.Status = domain.FeatureBuilt
		return result, rec
	}

	if err := batch.Insert(ctx, rec); err != nil {
		log.Error("Feature failed: insert rejected",
			zap.Int("index", index),
			zap.String("name", name),
			zap.Error(err))
		return failed(result, err), nil
	}

	log.Info("Added location",
		zap.String("name", name),
		zap.String("location_id", rec.LocationID.String()))
	result.Status = domain.FeatureInserted
	return result, rec
}

func failed(result domain.FeatureResult, err error) domain.FeatureResult {
	result.Status = domain.FeatureFailed
	result.Error = err.Error()
	return result
}

// markUncommitted переводит все записанные строки в failed: коммит не прошёл.
func markUncommitted(report *domain.ImportReport, err error) {
	for i := range report.Results {
		if report.Results[i].Status == domain.FeatureInserted {
			report.Results[i].Status = domain.FeatureFailed
			report.Results[i].Error = err.Error()
		}
	}
}

// finish пересчитывает итоги и сохраняет отчёт в кеш
func (uc *ImportUseCase) finish(ctx context.Context, report *domain.ImportReport) {
	report.Inserted, report.Built, report.Skipped, report.Failed = 0, 0, 0, 0
	for _, r := range report.Results {
		switch r.Status {
		case domain.FeatureInserted:
			report.Inserted++
		case domain.FeatureBuilt:
			report.Built++
		case domain.FeatureSkipped:
			report.Skipped++
		case domain.FeatureFailed:
			report.Failed++
		}
	}
	report.FinishedAt = time.Now().UTC()

	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.SetReport(ctx, report, uc.reportTTL); err != nil {
		uc.logger.Warn("Failed to cache import report",
			zap.String("import_id", report.ID.String()),
			zap.Error(err))
	}
}

func (uc *ImportUseCase) publishLoaded(ctx context.Context, importID uuid.UUID, records []*domain.LocationRecord) {
	if uc.streamRepo == nil {
		return
	}
	for _, rec := range records {
		event := domain.LocationLoadedEvent{
			ImportID:   importID,
			LocationID: rec.LocationID,
			Name:       rec.Name,
			Latitude:   rec.Latitude,
			Longitude:  rec.Longitude,
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamLocationLoaded, event); err != nil {
			uc.logger.Warn("Failed to publish location event",
				zap.String("location_id", rec.LocationID.String()),
				zap.Error(err))
		}
	}
}

func (uc *ImportUseCase) publishCompleted(ctx context.Context, report *domain.ImportReport) {
	if uc.streamRepo == nil || report.DryRun {
		return
	}
	event := domain.ImportCompletedEvent{
		ImportID:   report.ID,
		Source:     report.Source,
		Total:      report.Total,
		Inserted:   report.Inserted,
		Skipped:    report.Skipped,
		Failed:     report.Failed,
		Committed:  report.Committed,
		FinishedAt: report.FinishedAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamImportDone, event); err != nil {
		uc.logger.Warn("Failed to publish import completion",
			zap.String("import_id", report.ID.String()),
			zap.Error(err))
	}
}
