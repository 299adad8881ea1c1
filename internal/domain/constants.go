package domain

import "time"

// Бизнес работает по фиксированному смещению JST (+09:00); DST отсутствует.
// Все «локальные» проверки (граница часа, рабочие часы, бизнес-день) считаются в JST.
var BusinessLocation = time.FixedZone("JST", 9*60*60)

// Business hours constants (local JST clock)
const (
	BusinessOpenHour  = 10
	BusinessCloseHour = 18

	// Длительность свыше 5 часов считается «длинным» слотом
	LongDurationThresholdMinutes = 5 * 60
)

// Slot constants
const (
	SlotStepMinutes      = 60
	DefaultBufferMinutes = 60
)

// Time format constants
const (
	// InstantFormat canonical форма Instant: ISO-8601 с миллисекундами, допускается только +09:00
	InstantFormat = "2006-01-02T15:04:05.000-07:00"

	DayKeyFormat = "2006-01-02" // YYYY-MM-DD (JST)
)
