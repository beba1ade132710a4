package get_dashboard

import (
	"fmt"
	"time"
)

// normalizeRequest подставляет текущий месяц и проверяет период
func normalizeRequest(req Request, today time.Time) (Request, error) {
	if req.From.IsZero() && req.To.IsZero() {
		from := monthStart(today)
		return Request{From: from, To: from.AddDate(0, 1, -1)}, nil
	}

	if req.From.IsZero() || req.To.IsZero() {
		return Request{}, fmt.Errorf("%w: both from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return Request{}, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if days := int(req.To.Sub(req.From).Hours()/24) + 1; days > MaxRangeDays {
		return Request{}, fmt.Errorf("%w: period is longer than %d days", ErrInvalidInput, MaxRangeDays)
	}

	return req, nil
}
