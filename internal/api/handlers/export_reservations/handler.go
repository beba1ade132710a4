package export_reservations

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
	"github.com/m04kA/villa-booking-service/pkg/xlsxexport"
)

const (
	msgInvalidFilter = "검색 조건이 올바르지 않습니다"
)

type Handler struct {
	service ReservationService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/admin/reservations/export
// Фильтры те же, что у списка; пагинация игнорируется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := models.ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/reservations/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	// файл собирается в памяти, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	rows, err := h.service.Export(r.Context(), req, &buf)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/reservations/export - Failed to export: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("reservations-%s.xlsx", h.now().Format("20060102"))

	w.Header().Set("Content-Type", xlsxexport.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/reservations/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/reservations/export - Exported %d rows", rows)
}
