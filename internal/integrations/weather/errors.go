package weather

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("weather client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API погоды
	ErrInvalidResponse = errors.New("weather client: invalid response")

	// ErrUnauthorized неверный или просроченный API-ключ
	ErrUnauthorized = errors.New("weather client: unauthorized")
)
