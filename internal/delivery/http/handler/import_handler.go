package handler

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/location-loader/internal/infrastructure/geojson"
	"github.com/location-loader/internal/pkg/errors"
	"github.com/location-loader/internal/pkg/utils"
	"github.com/location-loader/internal/usecase"
	"github.com/location-loader/internal/usecase/dto"
	"go.uber.org/zap"
)

// ImportHandler - обработчик загрузки GeoJSON
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

// NewImportHandler - создание нового ImportHandler
func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// CreateImport godoc
// @Summary Загрузка GeoJSON коллекции
// @Description Принимает FeatureCollection (или одиночный Feature) и создаёт по одной локации на каждый именованный объект. Координаты линий и полигонов усредняются. Объекты без имени пропускаются, объекты с некорректной геометрией попадают в отчёт как failed.
// @Tags Imports
// @Accept json
// @Produce json
// @Param dry_run query bool false "Только построить записи, ничего не сохранять" default(false)
// @Param source query string false "Метка источника для отчёта"
// @Param request body domain.FeatureCollection true "GeoJSON FeatureCollection"
// @Success 200 {object} utils.SuccessResponse{data=domain.ImportReport}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/imports [post]
func (h *ImportHandler) CreateImport(c *fiber.Ctx) error {
	start := time.Now()

	collection, err := geojson.Decode(bytes.NewReader(c.Body()))
	if err != nil {
		h.logger.Debug("Rejected import body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	req := dto.ImportRequest{
		Source:     c.Query("source", "http"),
		DryRun:     c.QueryBool("dry_run", false),
		Collection: collection,
	}

	report, err := h.importUC.Import(c.Context(), req)
	if err != nil {
		if report != nil {
			h.logger.Error("Import not committed",
				zap.String("import_id", report.ID.String()),
				zap.Error(err))
			return utils.SendError(c, errors.ErrDatabaseError.WithDetails(map[string]interface{}{
				"import_id": report.ID.String(),
			}))
		}
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, &utils.Meta{
		Total:    report.Total,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetImport godoc
// @Summary Отчёт о загрузке
// @Description Возвращает сохранённый отчёт о загрузке по его идентификатору. Отчёты хранятся ограниченное время.
// @Tags Imports
// @Produce json
// @Param id path string true "ID загрузки (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=domain.ImportReport}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/imports/{id} [get]
func (h *ImportHandler) GetImport(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID.WithDetails(map[string]interface{}{"id": raw}))
	}

	report, err := h.importUC.GetReport(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, &utils.Meta{Total: report.Total})
}
