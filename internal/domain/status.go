package domain

import "fmt"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusDraft     BookingStatus = "Draft"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
	StatusCompleted BookingStatus = "Completed"
)

// InitialStatus статус нового бронирования
func InitialStatus() BookingStatus {
	return StatusDraft
}

// ParseBookingStatus валидирует строковое значение статуса.
// Допустимы только четыре именованных константы.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusDraft, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValue, s)
	}
}

func (s BookingStatus) String() string {
	return string(s)
}
