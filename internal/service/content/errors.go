package content

import "errors"

var (
	// ErrPageNotFound страница не найдена или не опубликована
	ErrPageNotFound = errors.New("content: page not found")

	// ErrFileTooLarge файл больше допустимого размера
	ErrFileTooLarge = errors.New("content: file too large")

	// ErrUnsupportedType загружен не файл изображения
	ErrUnsupportedType = errors.New("content: unsupported file type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("content: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("content: internal error")
)
