package search_rooms

import (
	"fmt"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// validateCriteria валидирует критерии поиска
func validateCriteria(c Criteria) error {
	if c.Adults < 0 || c.Children < 0 {
		return fmt.Errorf("%w: guest counts must be non-negative", ErrInvalidInput)
	}

	if !c.AllZones() && !domain.Zone(c.Zone).IsValid() {
		return fmt.Errorf("%w: unknown zone %q", ErrInvalidInput, c.Zone)
	}

	if c.HasDates() && !c.CheckOut.After(*c.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	return nil
}
