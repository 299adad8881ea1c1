package domain

import "fmt"

// MinDurationMinutes минимальная длительность бронирования (1 час)
const MinDurationMinutes = 60

// Duration длительность бронирования в минутах.
// Бизнес работает в целых часах: значение всегда >= 60 и кратно 60.
type Duration struct {
	minutes int
}

// NewDuration создает Duration из минут.
// ErrValue - не положительное, меньше 60 или не кратно 60.
func NewDuration(minutes int) (Duration, error) {
	if minutes <= 0 {
		return Duration{}, fmt.Errorf("%w: duration must be a positive number of minutes, got %d", ErrValue, minutes)
	}
	if minutes < MinDurationMinutes {
		return Duration{}, fmt.Errorf("%w: duration must be at least %d minutes, got %d", ErrValue, MinDurationMinutes, minutes)
	}
	if minutes%60 != 0 {
		return Duration{}, fmt.Errorf("%w: duration must be a multiple of 60 minutes, got %d", ErrValue, minutes)
	}
	return Duration{minutes: minutes}, nil
}

// NewDurationFromHours создает Duration из целых часов
func NewDurationFromHours(hours int) (Duration, error) {
	return NewDuration(hours * 60)
}

// Minutes длительность в минутах
func (d Duration) Minutes() int {
	return d.minutes
}

// Hours длительность в часах
func (d Duration) Hours() int {
	return d.minutes / 60
}

// Add сумма длительностей (инвариант перепроверяется)
func (d Duration) Add(other Duration) (Duration, error) {
	return NewDuration(d.minutes + other.minutes)
}

// Subtract разность длительностей; результат меньше 60 минут недопустим
func (d Duration) Subtract(other Duration) (Duration, error) {
	return NewDuration(d.minutes - other.minutes)
}

// IsLong true для «длинного» слота (> 5 часов)
func (d Duration) IsLong() bool {
	return d.minutes > LongDurationThresholdMinutes
}
