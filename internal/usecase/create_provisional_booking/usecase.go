package create_provisional_booking

import (
	"context"
	"fmt"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/service/availability"
)

// UseCase use case создания предварительного бронирования.
// Предварительное событие в календаре занимает слот до подтверждения администратором.
type UseCase struct {
	occupancyQuery      OccupancyQuery
	availabilityService AvailabilityService
	eventRepo           EventRepository
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	occupancyQuery OccupancyQuery,
	availabilityService AvailabilityService,
	eventRepo EventRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		occupancyQuery:      occupancyQuery,
		availabilityService: availabilityService,
		eventRepo:           eventRepo,
		logger:              logger,
	}
}

// Execute выполняет создание предварительного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateProvisionalBooking: car=%s, startAt=%s, duration=%d", req.CarID, req.StartAt, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateProvisionalBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим доменные примитивы
	carID, err := domain.ParseCarID(req.CarID)
	if err != nil {
		uc.logger.Warn("CreateProvisionalBooking: invalid carId %q: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	customerName, err := domain.NewCustomerName(req.CustomerName)
	if err != nil {
		uc.logger.Warn("CreateProvisionalBooking: invalid customerName: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	phone, err := domain.NewPhoneNumber(req.PhoneNumber)
	if err != nil {
		uc.logger.Warn("CreateProvisionalBooking: invalid phoneNumber: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	startAt, err := domain.ParseInstant(req.StartAt)
	if err != nil {
		uc.logger.Warn("CreateProvisionalBooking: invalid startAt %q: %v", req.StartAt, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	duration, err := domain.NewDuration(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateProvisionalBooking: invalid duration %d: %v", req.DurationMinutes, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	timeRange, err := domain.NewTimeRange(startAt, duration)
	if err != nil {
		uc.logger.Warn("CreateProvisionalBooking: invalid time range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем правила слотов на день бронирования
	dayKey := startAt.DayKey()
	existingCount, err := uc.occupancyQuery.CountActiveEventsOverlappingBusinessHours(ctx, dayKey)
	if err != nil {
		uc.logger.Error("CreateProvisionalBooking: failed to count events for day=%s: %v", dayKey, err)
		return nil, fmt.Errorf("%w: failed to count events: %v", ErrInternal, err)
	}

	ruleResult := domain.CanBookSlot(timeRange, existingCount)
	if !ruleResult.OK {
		uc.logger.Info("CreateProvisionalBooking: rule rejected slot startAt=%s: %s", req.StartAt, ruleResult.Reason)
		return nil, fmt.Errorf("%w: %s", ErrSlotNotBookable, ruleResult.Reason)
	}

	// 4. Проверяем занятость с буфером по умолчанию.
	// Календарь остаётся единственным арбитром занятости: проверка
	// носит рекомендательный характер и не резервирует слот.
	unavailable, err := uc.availabilityService.IsUnavailable(ctx, timeRange, availability.CheckOptions{})
	if err != nil {
		uc.logger.Error("CreateProvisionalBooking: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if unavailable {
		uc.logger.Info("CreateProvisionalBooking: slot startAt=%s is occupied", req.StartAt)
		return nil, ErrSlotOccupied
	}

	// 5. Создаем предварительное событие в календаре
	title := buildEventTitle(req, customerName)
	description := buildEventDescription(req, customerName, phone)

	eventID, err := uc.eventRepo.CreateProvisionalEvent(ctx, timeRange, title, description)
	if err != nil {
		uc.logger.Error("CreateProvisionalBooking: failed to create event: %v", err)
		return nil, fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateProvisionalBooking: created event id=%s for car=%s, startAt=%s",
		eventID.String(), carID.String(), req.StartAt)

	return &Response{
		CarID:           carID.String(),
		StartAt:         timeRange.Start().String(),
		DurationMinutes: duration.Minutes(),
		CalendarEventID: eventID.String(),
	}, nil
}
