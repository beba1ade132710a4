package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	getDashboard "github.com/m04kA/villa-booking-service/internal/usecase/get_dashboard"
)

const (
	msgInvalidDate  = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgInvalidRange = "조회 기간이 올바르지 않습니다"
)

type Handler struct {
	useCase DashboardUseCase
	logger  Logger
}

func NewHandler(useCase DashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var req getDashboard.Request
	from, err := handlers.QueryDate(q, "from")
	if err != nil {
		h.logger.Warn("GET /admin/dashboard - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(q, "to")
	if err != nil {
		h.logger.Warn("GET /admin/dashboard - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from != nil {
		req.From = *from
	}
	if to != nil {
		req.To = *to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDashboard.ErrInvalidInput):
			h.logger.Warn("GET /admin/dashboard - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
