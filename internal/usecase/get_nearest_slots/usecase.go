package get_nearest_slots

import (
	"context"
	"fmt"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

const minutesPerDay = 24 * 60

// UseCase use case поиска ближайших свободных слотов
type UseCase struct {
	occupancyQuery OccupancyQuery
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(occupancyQuery OccupancyQuery, logger Logger) *UseCase {
	return &UseCase{
		occupancyQuery: occupancyQuery,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет поиск ближайших свободных слотов.
// Список событий календаря запрашивается ровно один раз на весь диапазон поиска.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetNearestSlots: duration=%d", req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetNearestSlots: validation failed: %v", err)
		return nil, err
	}

	duration, err := domain.NewDuration(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("GetNearestSlots: invalid duration %d: %v", req.DurationMinutes, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	limit := clampLimit(req.Limit)
	searchDays := clampSearchDays(req.SearchDays)

	// 2. Вычисляем начало поиска: округление вверх до ближайшего часа
	from, err := uc.resolveFrom(req.From)
	if err != nil {
		uc.logger.Warn("GetNearestSlots: invalid from %v: %v", req.From, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fromAligned := from.CeilToHour()
	windowEnd := fromAligned.AddMinutes(searchDays * minutesPerDay)

	// 3. Одним запросом получаем все активные события окна поиска
	events, err := uc.occupancyQuery.ListActiveEventRanges(ctx, fromAligned, windowEnd)
	if err != nil {
		uc.logger.Error("GetNearestSlots: failed to list events: %v", err)
		return nil, fmt.Errorf("%w: failed to list events: %v", ErrInternal, err)
	}

	// 4. Считаем занятость рабочих часов по дням окна
	counts := businessHoursCounts(fromAligned, windowEnd, events)

	// 5. Перебираем кандидатов с шагом в час
	slots := make([]Slot, 0, limit)
	for cursor := fromAligned; cursor.Before(windowEnd) && len(slots) < limit; cursor = cursor.AddMinutes(domain.SlotStepMinutes) {
		timeRange, err := domain.NewTimeRange(cursor, duration)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to build candidate range: %v", ErrInternal, err)
		}

		rule := domain.CanBookSlot(timeRange, counts[cursor.DayKey()])
		if !rule.OK {
			continue
		}

		if overlapsAny(events, timeRange, domain.DefaultBufferMinutes) {
			continue
		}

		slots = append(slots, Slot{
			StartAt: timeRange.Start().String(),
			EndAt:   timeRange.End().String(),
		})
	}

	uc.logger.Info("GetNearestSlots: found %d slots from=%s, searchDays=%d", len(slots), fromAligned.String(), searchDays)

	return &Response{
		From:            fromAligned.String(),
		DurationMinutes: duration.Minutes(),
		Slots:           slots,
	}, nil
}

func (uc *UseCase) resolveFrom(from *string) (domain.Instant, error) {
	if from == nil || *from == "" {
		return domain.NewInstantFromTime(uc.timeProvider.Now()), nil
	}
	return domain.ParseInstant(*from)
}
