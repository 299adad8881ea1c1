package create_provisional_booking

import (
	"errors"
	"net/http"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
	createProvisionalBooking "github.com/ksudate/WFC-BookingService/internal/usecase/create_provisional_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotBookable    = "выбранный слот нарушает правила бронирования"
	msgSlotOccupied       = "выбранный слот уже занят или не обеспечен буфер между записями"
)

type Handler struct {
	useCase CreateProvisionalBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateProvisionalBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/provisional
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateProvisionalBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/provisional - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createProvisionalBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/provisional - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createProvisionalBooking.ErrSlotNotBookable):
			h.logger.Warn("POST /bookings/provisional - Slot not bookable: startAt=%s, error=%v", req.StartAt, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotBookable)

		case errors.Is(err, createProvisionalBooking.ErrSlotOccupied):
			h.logger.Warn("POST /bookings/provisional - Slot occupied: startAt=%s", req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		default:
			h.logger.Error("POST /bookings/provisional - Failed to create booking: startAt=%s, error=%v", req.StartAt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/provisional - Created event id=%s, startAt=%s", result.CalendarEventID, result.StartAt)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
