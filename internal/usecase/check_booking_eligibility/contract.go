package check_booking_eligibility

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/service/availability"
)

// OccupancyQuery интерфейс запросов занятости к внешнему календарю
type OccupancyQuery interface {
	// CountActiveEventsOverlappingBusinessHours число активных событий,
	// пересекающих рабочие часы указанного дня
	CountActiveEventsOverlappingBusinessHours(ctx context.Context, dayKey string) (int, error)
}

// AvailabilityService интерфейс сервиса проверки доступности слота
type AvailabilityService interface {
	IsUnavailable(ctx context.Context, timeRange domain.TimeRange, opts availability.CheckOptions) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
