package content

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница не найдена
	ErrPageNotFound = errors.New("content.repository: page not found")

	// ErrQuery возвращается при ошибке запроса к БД
	ErrQuery = errors.New("content.repository: query failed")

	// ErrEncode возвращается, если блоки страницы не удалось (де)сериализовать
	ErrEncode = errors.New("content.repository: failed to encode page blocks")
)
