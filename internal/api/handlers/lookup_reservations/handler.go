package lookup_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
)

const (
	msgNameAndPhoneRequired = "예약자 이름과 연락처를 입력해 주세요"
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

// Handle GET /api/v1/reservations/lookup?name=&phone=
// Пустой список - нормальный результат, а не 404.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	list, err := h.service.Lookup(r.Context(), q.Get("name"), q.Get("phone"))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/lookup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameAndPhoneRequired)

		default:
			h.logger.Error("GET /reservations/lookup - Failed to lookup reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/lookup - Found %d reservations", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
