package get_nearest_slots

import (
	"time"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/infra/calendar"
)

// businessHoursCounts считает для каждого дня окна поиска число активных событий,
// пересекающих рабочие часы этого дня. Событие, начавшееся накануне и
// продолжающееся утром, учитывается в счётчике следующего дня.
func businessHoursCounts(from, windowEnd domain.Instant, events []calendar.EventRange) map[string]int {
	counts := make(map[string]int)

	local := from.Time().In(domain.BusinessLocation)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, domain.BusinessLocation)
	end := windowEnd.Time()

	for day.Before(end) {
		businessStart := day.Add(time.Duration(domain.BusinessOpenHour) * time.Hour).UnixMilli()
		businessEnd := day.Add(time.Duration(domain.BusinessCloseHour) * time.Hour).UnixMilli()

		count := 0
		for _, ev := range events {
			if ev.Overlaps(businessStart, businessEnd) {
				count++
			}
		}
		counts[day.Format(domain.DayKeyFormat)] = count

		day = day.AddDate(0, 0, 1)
	}

	return counts
}

// overlapsAny проверяет пересечение кандидата (расширенного на bufferMinutes
// с обеих сторон) хотя бы с одним событием
func overlapsAny(events []calendar.EventRange, timeRange domain.TimeRange, bufferMinutes int) bool {
	start := timeRange.Start().AddMinutes(-bufferMinutes).UnixMilli()
	end := timeRange.End().AddMinutes(bufferMinutes).UnixMilli()

	for _, ev := range events {
		if ev.Overlaps(start, end) {
			return true
		}
	}
	return false
}
