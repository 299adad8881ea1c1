package domain

import "fmt"

// SlotRuleResult результат проверки правил слота.
// Reason - диагностическое пояснение при отказе.
type SlotRuleResult struct {
	OK     bool
	Reason string
}

// CanBookSlot проверяет, допустим ли интервал как предмет бронирования.
//
// Правила:
//   - интервал целиком внутри рабочих часов (10:00-18:00 JST); конец ровно в 18:00 допустим
//   - интервал завершается в тот же бизнес-день, в который начался
//   - при существующих бронированиях в этот день: «длинные» слоты (>5ч) запрещены,
//     обычные - разрешены
//   - при пустом дне действует резервирование ёмкости: обычный слот может начинаться
//     только в 10:00 или 14:00, длинный - только в 10:00/11:00/12:00
//
// Асимметрия намеренная: пустой день нельзя занимать длинной работой с поздним стартом,
// иначе она заблокирует обычные работы, а одинокая длинная работа должна успеть до закрытия.
func CanBookSlot(tr TimeRange, existingBookingsCount int) SlotRuleResult {
	if existingBookingsCount < 0 {
		return SlotRuleResult{OK: false, Reason: "existing bookings count must be a non-negative integer"}
	}

	if res := checkBusinessHours(tr); !res.OK {
		return res
	}

	isLong := tr.Duration().IsLong()

	if existingBookingsCount >= 1 {
		if isLong {
			return SlotRuleResult{OK: false, Reason: "long slot: a day that already has a booking cannot take a long slot"}
		}
		// рабочие часы уже проверены
		return SlotRuleResult{OK: true}
	}

	// В этот день бронирований ещё нет
	startHour := tr.Start().Time().Hour()

	if isLong {
		if startHour == BusinessOpenHour || startHour == BusinessOpenHour+1 || startHour == BusinessOpenHour+2 {
			return SlotRuleResult{OK: true}
		}
		return SlotRuleResult{OK: false, Reason: fmt.Sprintf("long slot: on an empty day the start hour must be %d, %d or %d", BusinessOpenHour, BusinessOpenHour+1, BusinessOpenHour+2)}
	}

	if startHour == BusinessOpenHour || startHour == BusinessOpenHour+4 {
		return SlotRuleResult{OK: true}
	}
	return SlotRuleResult{OK: false, Reason: fmt.Sprintf("normal slot: on an empty day the start hour must be %d or %d", BusinessOpenHour, BusinessOpenHour+4)}
}

func checkBusinessHours(tr TimeRange) SlotRuleResult {
	start := tr.Start().Time()
	end := tr.End().Time()

	// Интервал должен завершаться в тот же бизнес-день (JST)
	if tr.Start().DayKey() != tr.End().DayKey() {
		return SlotRuleResult{OK: false, Reason: "time range must start and end on the same business day"}
	}

	if start.Hour() < BusinessOpenHour {
		return SlotRuleResult{OK: false, Reason: "outside business hours: start is before opening (10:00)"}
	}

	// Конец не позже 18:00; ровно 18:00 допустим
	endIsExactlyClose := end.Hour() == BusinessCloseHour && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0
	if !(end.Hour() < BusinessCloseHour || endIsExactlyClose) {
		return SlotRuleResult{OK: false, Reason: "outside business hours: end is after closing (18:00)"}
	}

	return SlotRuleResult{OK: true}
}
