package get_weather

import (
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
)

const (
	msgWeatherUnavailable = "날씨 정보를 불러올 수 없습니다"
)

type Handler struct {
	client WeatherClient
	logger Logger
}

func NewHandler(client WeatherClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/weather
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	current, err := h.client.GetCurrent(r.Context())
	if err != nil {
		h.logger.Error("GET /weather - Failed to get weather: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgWeatherUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, current)
}
