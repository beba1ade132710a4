package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgNotFound           = "예약을 찾을 수 없습니다"
	msgPhoneMismatch      = "예약자 연락처가 일치하지 않습니다"
	msgCannotCancel       = "취소할 수 없는 예약입니다"
	msgInvalidInput       = "예약번호와 연락처를 확인해 주세요"
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

// Handle PATCH /api/v1/reservations/{number}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{number}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.CancelByCustomer(r.Context(), number, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{number}/cancel - Not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrPhoneMismatch):
			h.logger.Warn("PATCH /reservations/{number}/cancel - Phone mismatch: number=%s", number)
			handlers.RespondForbidden(w, msgPhoneMismatch)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{number}/cancel - Cannot cancel: number=%s, error=%v", number, err)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{number}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{number}/cancel - Failed to cancel: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{number}/cancel - Cancelled by customer: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
