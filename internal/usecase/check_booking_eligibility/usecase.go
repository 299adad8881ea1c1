package check_booking_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/service/availability"
)

// UseCase use case проверки возможности бронирования слота
type UseCase struct {
	occupancyQuery      OccupancyQuery
	availabilityService AvailabilityService
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	occupancyQuery OccupancyQuery,
	availabilityService AvailabilityService,
	logger Logger,
) *UseCase {
	return &UseCase{
		occupancyQuery:      occupancyQuery,
		availabilityService: availabilityService,
		logger:              logger,
	}
}

// Execute выполняет проверку возможности бронирования.
// Нарушение бизнес-правил - не ошибка: возвращается Bookable=false с причинами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBookingEligibility: startAt=%s, duration=%d", req.StartAt, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckBookingEligibility: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим доменные примитивы
	startAt, err := domain.ParseInstant(req.StartAt)
	if err != nil {
		uc.logger.Warn("CheckBookingEligibility: invalid startAt %q: %v", req.StartAt, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	duration, err := domain.NewDuration(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CheckBookingEligibility: invalid duration %d: %v", req.DurationMinutes, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	timeRange, err := domain.NewTimeRange(startAt, duration)
	if err != nil {
		uc.logger.Warn("CheckBookingEligibility: invalid time range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Получаем число бронирований на день слота
	dayKey := startAt.DayKey()
	existingCount, err := uc.occupancyQuery.CountActiveEventsOverlappingBusinessHours(ctx, dayKey)
	if err != nil {
		uc.logger.Error("CheckBookingEligibility: failed to count events for day=%s: %v", dayKey, err)
		return nil, fmt.Errorf("%w: failed to count events: %v", ErrInternal, err)
	}

	// 4. Проверяем правила слотов
	ruleResult := domain.CanBookSlot(timeRange, existingCount)
	if !ruleResult.OK {
		uc.logger.Info("CheckBookingEligibility: rule rejected slot startAt=%s: %s", req.StartAt, ruleResult.Reason)
		return rejectedResponse(timeRange, ruleResult.Reason), nil
	}

	// 5. Проверяем занятость с учетом буфера
	unavailable, err := uc.availabilityService.IsUnavailable(ctx, timeRange, availability.CheckOptions{
		BufferMinutes: req.BufferMinutes,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidBuffer) {
			uc.logger.Warn("CheckBookingEligibility: invalid buffer: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckBookingEligibility: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if unavailable {
		uc.logger.Info("CheckBookingEligibility: slot startAt=%s is occupied", req.StartAt)
		return rejectedResponse(timeRange, reasonOccupied), nil
	}

	uc.logger.Info("CheckBookingEligibility: slot startAt=%s is bookable", req.StartAt)

	return &Response{
		Bookable:        true,
		Reasons:         []string{},
		StartAt:         timeRange.Start().String(),
		EndAt:           timeRange.End().String(),
		DurationMinutes: timeRange.Duration().Minutes(),
	}, nil
}

func rejectedResponse(timeRange domain.TimeRange, reason string) *Response {
	return &Response{
		Bookable:        false,
		Reasons:         []string{reason},
		StartAt:         timeRange.Start().String(),
		EndAt:           timeRange.End().String(),
		DurationMinutes: timeRange.Duration().Minutes(),
	}
}
