package search_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах поиска
	ErrInvalidInput = errors.New("search_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_rooms: internal error")
)
