package calendar

import (
	"time"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/integrations/googlecalendar"
)

// EventRange занятый интервал [Start, End) в epoch-миллисекундах.
// Намеренно не domain.TimeRange: внешние события не обязаны начинаться
// на границе часа и укладываться в часовые длительности.
type EventRange struct {
	Start int64
	End   int64
}

// Overlaps true при действительном пересечении с [start, end)
func (r EventRange) Overlaps(start, end int64) bool {
	return r.Start < end && start < r.End
}

// eventToRange приводит событие Calendar API к EventRange.
// Событие "на весь день" (поле date) считается занимающим сутки целиком по JST;
// end.date у таких событий указывает на следующий день, как и отдаёт API.
// Возвращает false, если у события нет пригодных границ.
func eventToRange(e *googlecalendar.Event) (EventRange, bool) {
	start, ok := eventEdgeToUnixMilli(e.Start)
	if !ok {
		return EventRange{}, false
	}
	end, ok := eventEdgeToUnixMilli(e.End)
	if !ok {
		return EventRange{}, false
	}
	return EventRange{Start: start, End: end}, true
}

func eventEdgeToUnixMilli(edge *googlecalendar.EventDateTime) (int64, bool) {
	if edge == nil {
		return 0, false
	}

	if edge.DateTime != "" {
		// Календарь может отдавать любой offset, не только +09:00,
		// поэтому domain.ParseInstant здесь не подходит
		t, err := time.Parse(time.RFC3339, edge.DateTime)
		if err != nil {
			return 0, false
		}
		return t.UnixMilli(), true
	}

	if edge.Date != "" {
		t, err := time.ParseInLocation(domain.DayKeyFormat, edge.Date, domain.BusinessLocation)
		if err != nil {
			return 0, false
		}
		return t.UnixMilli(), true
	}

	return 0, false
}

// activeEventRanges отбрасывает отменённые события и события без пригодных границ
func activeEventRanges(events []googlecalendar.Event) []EventRange {
	ranges := make([]EventRange, 0, len(events))
	for i := range events {
		if events[i].IsCancelled() {
			continue
		}
		if r, ok := eventToRange(&events[i]); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}
