package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrPhoneMismatch телефон не совпадает с телефоном бронирования
	ErrPhoneMismatch = errors.New("reservations: phone does not match")

	// ErrCannotCancel бронирование уже отменено или дата заезда прошла
	ErrCannotCancel = errors.New("reservations: reservation cannot be cancelled")

	// ErrInvalidTransition недопустимый переход статуса
	ErrInvalidTransition = errors.New("reservations: invalid status transition")

	// ErrCannotCheck отметки заезда/выезда недоступны для отмененного бронирования
	ErrCannotCheck = errors.New("reservations: cancelled reservation cannot be checked in or out")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
