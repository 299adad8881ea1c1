package domain

import "fmt"

// TimeRange полуоткрытый интервал [start, start+duration).
// Начало обязано попадать ровно на границу часа в JST.
type TimeRange struct {
	start    Instant
	duration Duration
}

// NewTimeRange создает TimeRange.
// ErrValue - start не выровнен по границе часа.
func NewTimeRange(start Instant, duration Duration) (TimeRange, error) {
	if !start.HourAligned() {
		return TimeRange{}, fmt.Errorf("%w: time range must start exactly on the hour, got %s", ErrValue, start)
	}
	return TimeRange{start: start, duration: duration}, nil
}

// Start начало интервала (включительно)
func (tr TimeRange) Start() Instant {
	return tr.start
}

// End конец интервала (не включается)
func (tr TimeRange) End() Instant {
	return tr.start.AddMinutes(tr.duration.Minutes())
}

// Duration длительность интервала
func (tr TimeRange) Duration() Duration {
	return tr.duration
}

// Overlaps true, если интервалы действительно пересекаются.
// Соприкосновение границ (end A == start B) пересечением не считается.
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.start.Before(other.End()) && other.start.Before(tr.End())
}

// Contains true, если момент попадает в интервал: start включительно, end - нет
func (tr TimeRange) Contains(i Instant) bool {
	return !i.Before(tr.start) && i.Before(tr.End())
}
