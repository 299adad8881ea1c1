package domain

import "fmt"

// Booking агрегат бронирования.
// Все поля приватные: инварианты поддерживаются исключительно собственными методами.
// Агрегат не персистится - источником истины по занятому времени остается внешний календарь.
type Booking struct {
	id           BookingID
	customerName CustomerName
	phoneNumber  PhoneNumber
	carID        CarID
	menuID       MenuID
	optionIDs    []OptionID
	timeRange    TimeRange
	price        Money
	status       BookingStatus

	// Ссылка на событие во внешнем календаре. nil - не привязано.
	calendarEventID *CalendarEventID
}

// BookingParams параметры создания/восстановления агрегата
type BookingParams struct {
	ID           BookingID
	CustomerName CustomerName
	PhoneNumber  PhoneNumber
	CarID        CarID
	MenuID       MenuID
	OptionIDs    []OptionID
	TimeRange    TimeRange
	Price        Money
}

// NewBooking фабрика нового бронирования: статус всегда Draft, событие календаря не привязано
func NewBooking(params BookingParams) (*Booking, error) {
	return newBooking(params, InitialStatus(), nil)
}

// ReconstructBooking восстанавливает агрегат из внешнего представления
// с произвольным валидным статусом и состоянием привязки
func ReconstructBooking(params BookingParams, status BookingStatus, calendarEventID *CalendarEventID) (*Booking, error) {
	if _, err := ParseBookingStatus(status.String()); err != nil {
		return nil, err
	}
	return newBooking(params, status, calendarEventID)
}

func newBooking(params BookingParams, status BookingStatus, calendarEventID *CalendarEventID) (*Booking, error) {
	if err := validateOptionIDs(params.OptionIDs); err != nil {
		return nil, err
	}

	b := &Booking{
		id:           params.ID,
		customerName: params.CustomerName,
		phoneNumber:  params.PhoneNumber,
		carID:        params.CarID,
		menuID:       params.MenuID,
		optionIDs:    copyOptionIDs(params.OptionIDs),
		timeRange:    params.TimeRange,
		price:        params.Price,
		status:       status,
	}

	if calendarEventID != nil {
		id := *calendarEventID
		b.calendarEventID = &id
	}

	return b, nil
}

// ------------------------
// Мутации, допустимые только в Draft
// ------------------------

// ChangePrice меняет стоимость
func (b *Booking) ChangePrice(next Money) error {
	if err := b.assertDraft("price"); err != nil {
		return err
	}
	b.price = next
	return nil
}

// Reschedule переносит бронирование на другой интервал
func (b *Booking) Reschedule(next TimeRange) error {
	if err := b.assertDraft("timeRange"); err != nil {
		return err
	}
	b.timeRange = next
	return nil
}

// ChangeCarID меняет автомобиль
func (b *Booking) ChangeCarID(next CarID) error {
	if err := b.assertDraft("carId"); err != nil {
		return err
	}
	b.carID = next
	return nil
}

// ChangeMenuID меняет меню работ
func (b *Booking) ChangeMenuID(next MenuID) error {
	if err := b.assertDraft("menuId"); err != nil {
		return err
	}
	b.menuID = next
	return nil
}

// ChangeOptionIDs заменяет набор опций (хранится собственная копия)
func (b *Booking) ChangeOptionIDs(next []OptionID) error {
	if err := b.assertDraft("optionIds"); err != nil {
		return err
	}
	if err := validateOptionIDs(next); err != nil {
		return err
	}
	b.optionIDs = copyOptionIDs(next)
	return nil
}

// ------------------------
// Переходы статуса
// ------------------------

// ChangeStatus выполняет переход согласно таблице жизненного цикла
func (b *Booking) ChangeStatus(next BookingStatus) error {
	status, err := Transition(b.status, next)
	if err != nil {
		return err
	}
	b.status = status
	return nil
}

// Confirm переводит бронирование в Confirmed
func (b *Booking) Confirm() error {
	return b.ChangeStatus(StatusConfirmed)
}

// Cancel переводит бронирование в Cancelled
func (b *Booking) Cancel() error {
	return b.ChangeStatus(StatusCancelled)
}

// Complete переводит бронирование в Completed
func (b *Booking) Complete() error {
	return b.ChangeStatus(StatusCompleted)
}

// ------------------------
// Привязка события внешнего календаря
// ------------------------

// LinkCalendarEvent привязывает событие календаря.
// Недопустимо в Draft и при уже существующей привязке.
func (b *Booking) LinkCalendarEvent(id CalendarEventID) error {
	if b.status == StatusDraft {
		return fmt.Errorf("%w: cannot link calendar event while status is %s", ErrValue, b.status)
	}
	if b.calendarEventID != nil {
		return fmt.Errorf("%w: calendar event is already linked", ErrValue)
	}
	b.calendarEventID = &id
	return nil
}

// UnlinkCalendarEvent снимает привязку. Недопустимо в Completed.
func (b *Booking) UnlinkCalendarEvent() error {
	if b.status == StatusCompleted {
		return fmt.Errorf("%w: cannot unlink calendar event when status is %s", ErrValue, b.status)
	}
	b.calendarEventID = nil
	return nil
}

// ------------------------
// Getters
// ------------------------

func (b *Booking) ID() BookingID { return b.id }

func (b *Booking) CustomerName() CustomerName { return b.customerName }

func (b *Booking) PhoneNumber() PhoneNumber { return b.phoneNumber }

func (b *Booking) CarID() CarID { return b.carID }

func (b *Booking) MenuID() MenuID { return b.menuID }

func (b *Booking) TimeRange() TimeRange { return b.timeRange }

func (b *Booking) Price() Money { return b.price }

func (b *Booking) Status() BookingStatus { return b.status }

// OptionIDs возвращает копию набора опций
func (b *Booking) OptionIDs() []OptionID {
	return copyOptionIDs(b.optionIDs)
}

// CalendarEventID возвращает привязанный идентификатор события или nil
func (b *Booking) CalendarEventID() *CalendarEventID {
	if b.calendarEventID == nil {
		return nil
	}
	id := *b.calendarEventID
	return &id
}

// ------------------------
// private helpers
// ------------------------

func (b *Booking) assertDraft(field string) error {
	if b.status != StatusDraft {
		return &FieldLockedError{Field: field, Status: b.status}
	}
	return nil
}

func validateOptionIDs(ids []OptionID) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i].Equal(ids[j]) {
				return fmt.Errorf("%w: duplicate option id %s", ErrValue, ids[i])
			}
		}
	}
	return nil
}

func copyOptionIDs(ids []OptionID) []OptionID {
	out := make([]OptionID, len(ids))
	copy(out, ids)
	return out
}
