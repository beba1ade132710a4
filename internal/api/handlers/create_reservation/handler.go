package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	createReservation "github.com/m04kA/villa-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidDate        = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgInvalidInput       = "예약 정보를 확인해 주세요"
	msgRoomNotFound       = "객실을 찾을 수 없습니다"
	msgRoomNotAvailable   = "선택하신 날짜에는 이미 예약이 있습니다"
	msgOverCapacity       = "최대 인원을 초과했습니다"
	msgPastCheckIn        = "지난 날짜는 예약할 수 없습니다"
	msgConsentRequired    = "이용 약관에 동의해 주세요"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Room not available: room_id=%s, %s..%s", req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrOverCapacity):
			h.logger.Warn("POST /reservations - Over capacity: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgOverCapacity)

		case errors.Is(err, createReservation.ErrPastCheckIn):
			h.logger.Warn("POST /reservations - Past check-in: %s", req.CheckIn)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, createReservation.ErrConsentRequired):
			h.logger.Warn("POST /reservations - Consent not given: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgConsentRequired)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: number=%s, room_id=%s",
		result.Reservation.Number, result.Reservation.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
