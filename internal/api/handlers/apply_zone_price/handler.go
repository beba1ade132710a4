package apply_zone_price

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/prices"
	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidInput       = "구역 또는 요금이 올바르지 않습니다"
	msgZoneEmpty          = "해당 구역에 객실이 없습니다"
	msgNotSaved           = "요금이 저장되지 않았습니다. 다시 시도해 주세요"
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

// Handle PUT /api/v1/admin/prices/zones/{zone}
// Пустое тело: всем номерам зоны выставляются средние цены зоны.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zone := domain.Zone(mux.Vars(r)["zone"])

	var req models.ZonePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /admin/prices/zones/{zone} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.ApplyZonePrice(r.Context(), zone, &req)
	if err != nil {
		switch {
		case errors.Is(err, prices.ErrZoneEmpty):
			h.logger.Warn("PUT /admin/prices/zones/{zone} - Zone has no rooms: zone=%s", zone)
			handlers.RespondNotFound(w, msgZoneEmpty)

		case errors.Is(err, prices.ErrInvalidInput):
			h.logger.Warn("PUT /admin/prices/zones/{zone} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/prices/zones/{zone} - Failed to apply: zone=%s, error=%v", zone, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotSaved)
		}
		return
	}

	h.logger.Info("PUT /admin/prices/zones/{zone} - Applied: zone=%s", zone)
	handlers.RespondJSON(w, http.StatusOK, table)
}
