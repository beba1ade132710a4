package update_prices

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/prices"
	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidPrices      = "요금은 0보다 커야 합니다"
	msgRoomNotFound       = "객실을 찾을 수 없습니다"
	msgNotSaved           = "요금이 저장되지 않았습니다. 다시 시도해 주세요"
)

type Handler struct {
	service PriceService
	logger  Logger
}

func NewHandler(service PriceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/prices
// Все строки сохраняются одной транзакцией: при ошибке не меняется ни одна.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePricesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/prices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.UpdatePrices(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prices.ErrRoomNotFound):
			h.logger.Warn("PUT /admin/prices - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, prices.ErrInvalidInput):
			h.logger.Warn("PUT /admin/prices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPrices)

		default:
			h.logger.Error("PUT /admin/prices - Failed to update prices: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotSaved)
		}
		return
	}

	h.logger.Info("PUT /admin/prices - Updated %d rooms", len(req.Items))
	handlers.RespondJSON(w, http.StatusOK, table)
}
