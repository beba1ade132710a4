package list_pages

import (
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/pages
// Включая неопубликованные черновики.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pages, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/pages - Failed to list pages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pages)
}
