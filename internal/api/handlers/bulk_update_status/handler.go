package bulk_update_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidInput       = "선택한 예약과 상태를 확인해 주세요"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/status
// Пакет best-effort: ответ 200 содержит результат по каждому бронированию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BulkStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkUpdateStatus(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/reservations/status - Failed to update: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/status - status=%s succeeded=%d failed=%d",
		req.Status, result.Succeeded, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
