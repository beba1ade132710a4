package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

const (
	msgInvalidFilter = "검색 조건이 올바르지 않습니다"
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

// Handle GET /api/v1/admin/reservations?status=&stayFrom=&stayTo=&createdFrom=&createdTo=&search=&page=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := models.ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - page=%d size=%d total=%d", result.Page, result.Size, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
