package availability

import "errors"

var (
	// ErrInvalidBuffer возвращается при отрицательном буфере
	ErrInvalidBuffer = errors.New("buffer minutes must be non-negative")

	// ErrInternal возвращается при ошибке внешнего источника занятости
	ErrInternal = errors.New("availability service: internal error")
)
