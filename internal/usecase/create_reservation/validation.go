package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BookerName) == "" {
		return fmt.Errorf("%w: booker name is required", ErrInvalidInput)
	}

	if !validPhone(req.BookerPhone) {
		return fmt.Errorf("%w: booker phone is invalid", ErrInvalidInput)
	}

	if req.GuestPhone != nil && *req.GuestPhone != "" && !validPhone(*req.GuestPhone) {
		return fmt.Errorf("%w: guest phone is invalid", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	g := req.Guests
	if g.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}
	if g.Students < 0 || g.Children < 0 || g.Infants < 0 {
		return fmt.Errorf("%w: guest counts must be non-negative", ErrInvalidInput)
	}

	if req.CustomerNote != nil && utf8.RuneCountInString(*req.CustomerNote) > domain.MaxCustomerRequestLength {
		return fmt.Errorf("%w: customer request is longer than %d characters", ErrInvalidInput, domain.MaxCustomerRequestLength)
	}

	if !req.Agreed {
		return ErrConsentRequired
	}

	return nil
}

// validateCheckIn заезд не раньше сегодняшнего дня по времени виллы
func validateCheckIn(checkIn, now time.Time) error {
	if checkIn.Before(domain.CalendarDate(now)) {
		return ErrPastCheckIn
	}
	return nil
}

// validPhone цифры, допускаются дефисы и пробелы; от 9 до 11 цифр
func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == ' ':
		default:
			return false
		}
	}
	return digits >= 9 && digits <= 11
}

// normalizePhone оставляет только цифры, чтобы поиск по телефону не зависел от формата ввода
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
