package numbers

import "errors"

var (
	// ErrExhausted не удалось подобрать свободный номер за отведенное число попыток
	ErrExhausted = errors.New("numbers: no free reservation number")

	// ErrUsedSet ошибка хранилища использованных номеров
	ErrUsedSet = errors.New("numbers: used set failure")

	// ErrStoredCheck ошибка проверки номера по сохраненным бронированиям
	ErrStoredCheck = errors.New("numbers: stored number check failure")
)
