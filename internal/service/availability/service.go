package availability

import (
	"context"
	"fmt"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

// Service проверка доступности слота против внешнего источника занятости.
//
// Две эквивалентные формулировки одной проверки:
//   - IsDuplicated - простая проверка пересечения (без буфера)
//   - IsUnavailable - проверка с буфером (по умолчанию 60 минут с обеих сторон),
//     гарантирующим зазор между соседними бронированиями
//
// Результат носит рекомендательный характер: арбитром занятости остается
// внешний календарь, а не этот сервис.
type Service struct {
	occupancyQuery SlotOccupancyQuery
	logger         Logger
}

// NewService создает сервис доступности
func NewService(occupancyQuery SlotOccupancyQuery, logger Logger) *Service {
	return &Service{
		occupancyQuery: occupancyQuery,
		logger:         logger,
	}
}

// CheckOptions опции проверки доступности
type CheckOptions struct {
	// BufferMinutes зазор между бронированиями; nil - значение по умолчанию (60)
	BufferMinutes *int
}

// IsUnavailable true, если слот занят или не обеспечивается буфер между бронированиями
func (s *Service) IsUnavailable(ctx context.Context, timeRange domain.TimeRange, opts CheckOptions) (bool, error) {
	bufferMinutes := domain.DefaultBufferMinutes
	if opts.BufferMinutes != nil {
		bufferMinutes = *opts.BufferMinutes
	}
	if bufferMinutes < 0 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidBuffer, bufferMinutes)
	}

	unavailable, err := s.occupancyQuery.ExistsOverlappingSlot(ctx, timeRange, bufferMinutes)
	if err != nil {
		s.logger.Error("IsUnavailable: occupancy query failed for range %s - %s: %v",
			timeRange.Start(), timeRange.End(), err)
		return false, fmt.Errorf("%w: occupancy query: %v", ErrInternal, err)
	}

	return unavailable, nil
}

// IsDuplicated true, если слот пересекается с активным событием (буфер не применяется)
func (s *Service) IsDuplicated(ctx context.Context, timeRange domain.TimeRange) (bool, error) {
	duplicated, err := s.occupancyQuery.ExistsOverlappingSlot(ctx, timeRange, 0)
	if err != nil {
		s.logger.Error("IsDuplicated: occupancy query failed for range %s - %s: %v",
			timeRange.Start(), timeRange.End(), err)
		return false, fmt.Errorf("%w: occupancy query: %v", ErrInternal, err)
	}

	return duplicated, nil
}
