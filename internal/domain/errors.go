package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat возвращается, когда текстовое представление примитива не соответствует canonical форме
	ErrFormat = errors.New("malformed value format")

	// ErrValue возвращается, когда значение синтаксически корректно, но семантически недопустимо
	ErrValue = errors.New("invalid value")
)

// TransitionError недопустимый переход статуса бронирования
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking status cannot transition from %s to %s", e.From, e.To)
}

// FieldLockedError попытка изменить поле бронирования вне статуса Draft
type FieldLockedError struct {
	Field  string
	Status BookingStatus
}

func (e *FieldLockedError) Error() string {
	return fmt.Sprintf("cannot change %s (status=%s)", e.Field, e.Status)
}
