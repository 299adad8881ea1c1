package googlesheets

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlesheets client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Sheets API
	ErrInvalidResponse = errors.New("googlesheets client: invalid response")

	// ErrUnauthorized возвращается, когда API отклонил учётные данные
	ErrUnauthorized = errors.New("googlesheets client: unauthorized")
)
