package prices

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер из запроса не найден
	ErrRoomNotFound = errors.New("prices: room not found")

	// ErrZoneEmpty в зоне нет номеров
	ErrZoneEmpty = errors.New("prices: zone has no rooms")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("prices: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("prices: internal error")
)
