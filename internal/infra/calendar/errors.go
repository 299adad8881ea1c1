package calendar

import "errors"

var (
	// ErrListEvents возвращается при ошибке получения событий календаря
	ErrListEvents = errors.New("calendar query: failed to list events")

	// ErrCreateEvent возвращается при ошибке создания события
	ErrCreateEvent = errors.New("calendar repository: failed to create event")

	// ErrInvalidDayKey возвращается при некорректном ключе бизнес-дня
	ErrInvalidDayKey = errors.New("calendar query: invalid day key, expected YYYY-MM-DD")
)
