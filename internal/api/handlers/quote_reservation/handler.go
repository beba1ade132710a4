package quote_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	quoteReservation "github.com/m04kA/villa-booking-service/internal/usecase/quote_reservation"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidDate        = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgInvalidInput       = "입력값을 확인해 주세요"
	msgRoomNotFound       = "객실을 찾을 수 없습니다"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations/quote - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quoteReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/quote - Failed to quote: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
