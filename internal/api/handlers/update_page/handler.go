package update_page

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/content"
	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidInput       = "페이지 내용을 확인해 주세요"
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

// Handle PUT /api/v1/admin/pages/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req models.UpsertPageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/pages/{slug} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	page, err := h.service.Upsert(r.Context(), slug, &req)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("PUT /admin/pages/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/pages/{slug} - Failed to save page: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/pages/{slug} - Page saved: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, page)
}
