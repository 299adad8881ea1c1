package availability

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

// SlotOccupancyQuery порт к внешнему источнику занятости (Google Calendar).
// Отменённые события исключаются на стороне реализации порта.
type SlotOccupancyQuery interface {
	// ExistsOverlappingSlot true, если интервал (расширенный на bufferMinutes
	// с обеих сторон) пересекается хотя бы с одним активным событием
	ExistsOverlappingSlot(ctx context.Context, timeRange domain.TimeRange, bufferMinutes int) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
