package create_booking_draft

import (
	"context"
	"fmt"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

// UseCase use case создания черновика бронирования.
// Черновик не занимает слот в календаре: событие привязывается позднее,
// при подтверждении бронирования.
type UseCase struct {
	availabilityService AvailabilityService
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityService AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availabilityService: availabilityService,
		logger:              logger,
	}
}

// Execute выполняет создание черновика бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBookingDraft: car=%s, menu=%s, startAt=%s", req.CarID, req.MenuID, req.StartAt)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBookingDraft: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим доменные примитивы
	params, timeRange, err := buildBookingParams(req)
	if err != nil {
		uc.logger.Warn("CreateBookingDraft: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем дублирование слота (без буфера)
	duplicated, err := uc.availabilityService.IsDuplicated(ctx, timeRange)
	if err != nil {
		uc.logger.Error("CreateBookingDraft: duplication check failed: %v", err)
		return nil, fmt.Errorf("%w: duplication check failed: %v", ErrInternal, err)
	}
	if duplicated {
		uc.logger.Info("CreateBookingDraft: slot startAt=%s is already booked", req.StartAt)
		return nil, ErrSlotDuplicated
	}

	// 4. Создаем агрегат через фабрику: статус всегда Draft
	booking, err := domain.NewBooking(params)
	if err != nil {
		uc.logger.Warn("CreateBookingDraft: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("CreateBookingDraft: created draft id=%s, car=%s, startAt=%s",
		booking.ID().String(), req.CarID, req.StartAt)

	return responseFromBooking(booking), nil
}

func buildBookingParams(req *Request) (domain.BookingParams, domain.TimeRange, error) {
	customerName, err := domain.NewCustomerName(req.CustomerName)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	phone, err := domain.NewPhoneNumber(req.PhoneNumber)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	carID, err := domain.ParseCarID(req.CarID)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	menuID, err := domain.ParseMenuID(req.MenuID)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	optionIDs := make([]domain.OptionID, 0, len(req.OptionIDs))
	for _, raw := range req.OptionIDs {
		optionID, err := domain.ParseOptionID(raw)
		if err != nil {
			return domain.BookingParams{}, domain.TimeRange{}, err
		}
		optionIDs = append(optionIDs, optionID)
	}

	startAt, err := domain.ParseInstant(req.StartAt)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	duration, err := domain.NewDuration(req.DurationMinutes)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	timeRange, err := domain.NewTimeRange(startAt, duration)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	price, err := domain.NewMoney(req.PriceAmount)
	if err != nil {
		return domain.BookingParams{}, domain.TimeRange{}, err
	}

	return domain.BookingParams{
		ID:           domain.NewBookingID(),
		CustomerName: customerName,
		PhoneNumber:  phone,
		CarID:        carID,
		MenuID:       menuID,
		OptionIDs:    optionIDs,
		TimeRange:    timeRange,
		Price:        price,
	}, timeRange, nil
}

func responseFromBooking(booking *domain.Booking) *Response {
	optionIDs := make([]string, 0, len(booking.OptionIDs()))
	for _, id := range booking.OptionIDs() {
		optionIDs = append(optionIDs, id.String())
	}

	var calendarEventID *string
	if id := booking.CalendarEventID(); id != nil {
		value := id.String()
		calendarEventID = &value
	}

	return &Response{
		BookingID:       booking.ID().String(),
		CustomerName:    booking.CustomerName().String(),
		PhoneNumber:     booking.PhoneNumber().String(),
		CarID:           booking.CarID().String(),
		MenuID:          booking.MenuID().String(),
		OptionIDs:       optionIDs,
		StartAt:         booking.TimeRange().Start().String(),
		DurationMinutes: booking.TimeRange().Duration().Minutes(),
		PriceAmount:     booking.Price().Amount(),
		PriceCurrency:   booking.Price().Currency(),
		Status:          booking.Status().String(),
		CalendarEventID: calendarEventID,
	}
}
