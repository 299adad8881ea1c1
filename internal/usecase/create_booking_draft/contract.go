package create_booking_draft

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

// AvailabilityService интерфейс сервиса проверки дублирования слота
type AvailabilityService interface {
	// IsDuplicated true, если слот пересекается с активным событием (без буфера)
	IsDuplicated(ctx context.Context, timeRange domain.TimeRange) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
