package domain

import (
	"fmt"
	"regexp"
	"time"
)

// instantPattern допускает ровно одну форму записи: ISO-8601 с миллисекундами и offset +09:00.
// Любая другая валидная на вид запись (без миллисекунд, с Z, с другим offset) отклоняется.
var instantPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}\+09:00$`)

// Instant абсолютный момент времени с единственной canonical текстовой формой.
// Внутри хранится epoch в миллисекундах: два Instant равны тогда и только тогда,
// когда равны их epoch-значения.
type Instant struct {
	ms int64
}

// ParseInstant создает Instant из canonical текста.
// ErrFormat - текст не совпадает с canonical шаблоном.
// ErrValue - шаблон совпал, но дата/время не существуют (например, 30 февраля).
func ParseInstant(s string) (Instant, error) {
	if !instantPattern.MatchString(s) {
		return Instant{}, fmt.Errorf("%w: instant must match YYYY-MM-DDTHH:mm:ss.SSS+09:00, got %q", ErrFormat, s)
	}

	t, err := time.ParseInLocation(InstantFormat, s, BusinessLocation)
	if err != nil {
		return Instant{}, fmt.Errorf("%w: instant %q denotes a non-existent date/time", ErrValue, s)
	}

	return Instant{ms: t.UnixMilli()}, nil
}

// NewInstantFromTime создает Instant из time.Time (усечение до миллисекунд)
func NewInstantFromTime(t time.Time) Instant {
	return Instant{ms: t.UnixMilli()}
}

// NewInstantFromUnixMilli создает Instant из epoch-миллисекунд
func NewInstantFromUnixMilli(ms int64) Instant {
	return Instant{ms: ms}
}

// InstantNow текущий момент времени
func InstantNow() Instant {
	return NewInstantFromTime(time.Now())
}

// String возвращает canonical текстовую форму (+09:00, миллисекунды)
func (i Instant) String() string {
	return time.UnixMilli(i.ms).In(BusinessLocation).Format(InstantFormat)
}

// UnixMilli возвращает epoch в миллисекундах
func (i Instant) UnixMilli() int64 {
	return i.ms
}

// Time возвращает момент как time.Time в JST
func (i Instant) Time() time.Time {
	return time.UnixMilli(i.ms).In(BusinessLocation)
}

// AddMinutes возвращает новый Instant, сдвинутый на n минут (n может быть отрицательным)
func (i Instant) AddMinutes(n int) Instant {
	return Instant{ms: i.ms + int64(n)*60_000}
}

// Before строгое "раньше"
func (i Instant) Before(other Instant) bool {
	return i.ms < other.ms
}

// After строгое "позже"
func (i Instant) After(other Instant) bool {
	return i.ms > other.ms
}

// Equal совпадение моментов
func (i Instant) Equal(other Instant) bool {
	return i.ms == other.ms
}

// HourAligned true, если минуты/секунды/миллисекунды в JST равны нулю
func (i Instant) HourAligned() bool {
	t := i.Time()
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// CeilToHour округляет вверх до ближайшей границы часа; выровненный Instant не меняется
func (i Instant) CeilToHour() Instant {
	const hourMs = 60 * 60 * 1000
	rem := i.ms % hourMs
	if rem < 0 {
		rem += hourMs
	}
	if rem == 0 {
		return i
	}
	return Instant{ms: i.ms + (hourMs - rem)}
}

// DayKey бизнес-день (JST) в формате YYYY-MM-DD
func (i Instant) DayKey() string {
	return i.Time().Format(DayKeyFormat)
}
