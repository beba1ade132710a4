package search_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	searchRooms "github.com/m04kA/villa-booking-service/internal/usecase/search_rooms"
)

const (
	msgInvalidCriteria = "검색 조건이 올바르지 않습니다"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?checkIn=&checkOut=&adults=&children=&zone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	criteria, err := searchRooms.ParseCriteria(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCriteria)
		return
	}

	result, err := h.useCase.Execute(r.Context(), criteria)
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCriteria)

		default:
			h.logger.Error("GET /rooms/available - Failed to search rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - Found %d rooms: %s", len(result.Rooms), criteria.Encode())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
