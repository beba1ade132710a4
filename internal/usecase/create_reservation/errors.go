package create_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomNotAvailable возвращается, когда номер занят на выбранные даты
	ErrRoomNotAvailable = errors.New("create_reservation: room is not available for these dates")

	// ErrOverCapacity возвращается, когда гостей больше максимальной вместимости
	ErrOverCapacity = errors.New("create_reservation: guests exceed max occupancy")

	// ErrPastCheckIn возвращается, когда дата заезда в прошлом
	ErrPastCheckIn = errors.New("create_reservation: check-in date is in the past")

	// ErrConsentRequired возвращается, когда не отмечено обязательное согласие
	ErrConsentRequired = errors.New("create_reservation: consent is required")

	// ErrNumberUnavailable возвращается, когда не удалось подобрать номер бронирования
	ErrNumberUnavailable = errors.New("create_reservation: failed to allocate reservation number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")

	// errDuplicateNumber номер уже сохранен другим бронированием, нужен повтор
	errDuplicateNumber = errors.New("create_reservation: duplicate reservation number")
)
