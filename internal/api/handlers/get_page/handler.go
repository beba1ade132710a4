package get_page

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/content"
)

const (
	msgPageNotFound = "페이지를 찾을 수 없습니다"
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

// Handle GET /api/v1/pages/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	page, err := h.service.GetPublished(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrPageNotFound):
			h.logger.Warn("GET /pages/{slug} - Page not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgPageNotFound)

		default:
			h.logger.Error("GET /pages/{slug} - Failed to get page: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
