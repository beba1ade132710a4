package get_prices

import (
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/admin/prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.GetTable(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/prices - Failed to get price table: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, table)
}
