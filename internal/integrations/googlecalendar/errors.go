package googlecalendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Calendar API
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrUnauthorized возвращается, когда API отклонил учётные данные
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrEventIDMissing возвращается, когда events.insert не вернул id события
	ErrEventIDMissing = errors.New("googlecalendar client: event id is missing in response")
)
