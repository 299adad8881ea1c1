package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

// lookBehindHours насколько расширяется окно events.list назад.
// list отбирает события по их началу, поэтому событие, начавшееся накануне
// и всё ещё занимающее интересующее окно, без расширения потерялось бы.
const lookBehindHours = 24

// EventQuery запросы занятости к внешнему календарю.
// Реализует порты use case'ов и availability.SlotOccupancyQuery.
type EventQuery struct {
	client     CalendarClient
	calendarID string
	logger     Logger
}

// NewEventQuery создает запрос занятости поверх клиента Calendar API
func NewEventQuery(client CalendarClient, calendarID string, logger Logger) *EventQuery {
	return &EventQuery{
		client:     client,
		calendarID: calendarID,
		logger:     logger,
	}
}

// ListActiveEventRanges возвращает интервалы всех активных событий,
// пересекающих окно [timeMin, timeMax). Один bulk-вызов events.list.
func (q *EventQuery) ListActiveEventRanges(ctx context.Context, timeMin, timeMax domain.Instant) ([]EventRange, error) {
	// Расширяем окно назад, чтобы поймать события, начавшиеся до timeMin
	searchMin := timeMin.AddMinutes(-lookBehindHours * 60)

	events, err := q.client.ListEvents(ctx, q.calendarID, searchMin.String(), timeMax.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListEvents, err)
	}

	windowStart := timeMin.UnixMilli()
	windowEnd := timeMax.UnixMilli()

	ranges := make([]EventRange, 0, len(events))
	for _, r := range activeEventRanges(events) {
		if r.Overlaps(windowStart, windowEnd) {
			ranges = append(ranges, r)
		}
	}

	return ranges, nil
}

// CountActiveEventsOverlappingBusinessHours считает активные события,
// пересекающие окно рабочих часов (10:00-18:00 JST) указанного бизнес-дня.
// dayKey - YYYY-MM-DD (JST).
func (q *EventQuery) CountActiveEventsOverlappingBusinessHours(ctx context.Context, dayKey string) (int, error) {
	day, err := time.ParseInLocation(domain.DayKeyFormat, dayKey, domain.BusinessLocation)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayKey, dayKey)
	}

	windowStart := domain.NewInstantFromTime(day.Add(domain.BusinessOpenHour * time.Hour))
	windowEnd := domain.NewInstantFromTime(day.Add(domain.BusinessCloseHour * time.Hour))

	ranges, err := q.ListActiveEventRanges(ctx, windowStart, windowEnd)
	if err != nil {
		return 0, err
	}

	return len(ranges), nil
}

// ExistsOverlappingSlot true, если интервал, расширенный на bufferMinutes
// с обеих сторон, пересекается хотя бы с одним активным событием
func (q *EventQuery) ExistsOverlappingSlot(ctx context.Context, timeRange domain.TimeRange, bufferMinutes int) (bool, error) {
	buffered := bufferedWindow(timeRange, bufferMinutes)

	ranges, err := q.ListActiveEventRanges(ctx, buffered.start, buffered.end)
	if err != nil {
		return false, err
	}

	for _, r := range ranges {
		if r.Overlaps(buffered.start.UnixMilli(), buffered.end.UnixMilli()) {
			return true, nil
		}
	}

	return false, nil
}

type window struct {
	start domain.Instant
	end   domain.Instant
}

func bufferedWindow(tr domain.TimeRange, bufferMinutes int) window {
	return window{
		start: tr.Start().AddMinutes(-bufferMinutes),
		end:   tr.End().AddMinutes(bufferMinutes),
	}
}
