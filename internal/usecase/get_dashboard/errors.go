package get_dashboard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("get_dashboard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_dashboard: internal error")
)
