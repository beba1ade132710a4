package price

import "errors"

var (
	// ErrPriceNotFound возвращается, когда для номера нет строки в таблице цен
	ErrPriceNotFound = errors.New("price.repository: price not found")

	ErrBuildQuery = errors.New("price.repository: failed to build query")
	ErrExecQuery  = errors.New("price.repository: failed to execute query")
	ErrScanRow    = errors.New("price.repository: failed to scan row")
)
