package update_check_flags

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

const (
	msgInvalidID          = "예약 ID가 올바르지 않습니다"
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidInput       = "입실/퇴실 값을 확인해 주세요"
	msgNotFound           = "예약을 찾을 수 없습니다"
	msgCannotCheck        = "취소된 예약은 입실/퇴실 처리할 수 없습니다"
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

// Handle PATCH /api/v1/admin/reservations/{id}/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/check - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.CheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.SetCheckFlags(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/check - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCheck):
			h.logger.Warn("PATCH /admin/reservations/{id}/check - Cannot check: id=%d", id)
			handlers.RespondConflict(w, msgCannotCheck)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id}/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/check - Failed to update: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/check - Updated: id=%d, checkedIn=%t, checkedOut=%t",
		id, reservation.CheckedIn, reservation.CheckedOut)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
