package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/location-loader/internal/pkg/utils"
	"github.com/location-loader/internal/usecase"
	"go.uber.org/zap"
)

// LocationHandler - чтение загруженных локаций
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// GetLocation godoc
// @Summary Получение локации по ID
// @Tags Locations
// @Produce json
// @Param id path string true "ID локации (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=domain.LocationRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	rec, err := h.locationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, rec, nil)
}
