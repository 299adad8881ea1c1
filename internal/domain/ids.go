package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	generatedIDMinLength = 10
	generatedIDMaxLength = 50
)

// generatedIDPattern URL-safe символы для генерируемых идентификаторов
var generatedIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// BookingID идентификатор бронирования (генерируется сервисом)
type BookingID struct {
	value string
}

// NewBookingID генерирует новый BookingID
func NewBookingID() BookingID {
	return BookingID{value: uuid.NewString()}
}

// ParseBookingID валидирует внешний BookingID
func ParseBookingID(s string) (BookingID, error) {
	if err := validateGeneratedID("BookingID", s); err != nil {
		return BookingID{}, err
	}
	return BookingID{value: s}, nil
}

func (id BookingID) String() string { return id.value }

// OptionID идентификатор дополнительной опции (генерируется сервисом)
type OptionID struct {
	value string
}

// NewOptionID генерирует новый OptionID
func NewOptionID() OptionID {
	return OptionID{value: uuid.NewString()}
}

// ParseOptionID валидирует внешний OptionID
func ParseOptionID(s string) (OptionID, error) {
	if err := validateGeneratedID("OptionID", s); err != nil {
		return OptionID{}, err
	}
	return OptionID{value: s}, nil
}

func (id OptionID) String() string { return id.value }

// Equal сравнение OptionID по значению
func (id OptionID) Equal(other OptionID) bool {
	return id.value == other.value
}

func validateGeneratedID(kind, s string) error {
	if len(s) < generatedIDMinLength || len(s) > generatedIDMaxLength {
		return fmt.Errorf("%w: %s length must be %d..%d, got %d", ErrValue, kind, generatedIDMinLength, generatedIDMaxLength, len(s))
	}
	if !generatedIDPattern.MatchString(s) {
		return fmt.Errorf("%w: %s must contain only URL-safe characters", ErrFormat, kind)
	}
	return nil
}

// CarID идентификатор модели автомобиля. Совпадает с ID в прайс-листе (например, "toyota-prius"),
// поэтому в отличие от генерируемых ID алфавит не ограничивается - запрещены
// только управляющие символы.
type CarID struct {
	value string
}

const carIDMaxLength = 100

// ParseCarID валидирует CarID
func ParseCarID(s string) (CarID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len([]rune(trimmed)) > carIDMaxLength {
		return CarID{}, fmt.Errorf("%w: CarID length must be 1..%d", ErrValue, carIDMaxLength)
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return CarID{}, fmt.Errorf("%w: CarID must not contain control characters", ErrFormat)
		}
	}
	return CarID{value: trimmed}, nil
}

func (id CarID) String() string { return id.value }

// MenuID идентификатор меню работ (тонировка). Фиксированный набор значений,
// соответствующий колонкам прайс-листа.
type MenuID struct {
	value string
}

var menuDisplayNames = map[string]string{
	"front-set":          "フロントセット",
	"front":              "フロント",
	"front-left-right":   "フロント左右",
	"rear-set":           "リアセット",
	"rear-left-right":    "リア左右",
	"quarter-left-right": "クォーター左右",
	"rear":               "リア",
}

// ParseMenuID валидирует MenuID против фиксированного списка меню
func ParseMenuID(s string) (MenuID, error) {
	if _, ok := menuDisplayNames[s]; !ok {
		return MenuID{}, fmt.Errorf("%w: unknown MenuID %q", ErrValue, s)
	}
	return MenuID{value: s}, nil
}

func (id MenuID) String() string { return id.value }

// DisplayName японское отображаемое имя меню
func (id MenuID) DisplayName() string {
	return menuDisplayNames[id.value]
}

// CalendarEventID идентификатор события во внешнем календаре.
// Выдается внешней системой, поэтому формат почти не ограничивается.
type CalendarEventID struct {
	value string
}

const calendarEventIDMaxLength = 255

// ParseCalendarEventID валидирует CalendarEventID
func ParseCalendarEventID(s string) (CalendarEventID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len(trimmed) > calendarEventIDMaxLength {
		return CalendarEventID{}, fmt.Errorf("%w: CalendarEventID length must be 1..%d", ErrValue, calendarEventIDMaxLength)
	}
	return CalendarEventID{value: trimmed}, nil
}

func (id CalendarEventID) String() string { return id.value }
