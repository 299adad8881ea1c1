package get_nearest_slots

import (
	"context"
	"time"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/infra/calendar"
)

// OccupancyQuery интерфейс запросов занятости к внешнему календарю
type OccupancyQuery interface {
	// ListActiveEventRanges все активные события, пересекающие окно [timeMin, timeMax)
	ListActiveEventRanges(ctx context.Context, timeMin, timeMax domain.Instant) ([]calendar.EventRange, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
