package quote_reservation

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	g := req.Guests
	if g.Adults < 0 || g.Students < 0 || g.Children < 0 || g.Infants < 0 {
		return fmt.Errorf("%w: guest counts must be non-negative", ErrInvalidInput)
	}

	return nil
}
