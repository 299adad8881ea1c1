package create_booking_draft

import (
	"errors"
	"net/http"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
	createBookingDraft "github.com/ksudate/WFC-BookingService/internal/usecase/create_booking_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotDuplicated     = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateBookingDraftUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBookingDraft.ErrInvalidInput):
			h.logger.Warn("POST /bookings/draft - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBookingDraft.ErrSlotDuplicated):
			h.logger.Warn("POST /bookings/draft - Slot duplicated: startAt=%s", req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotDuplicated)

		default:
			h.logger.Error("POST /bookings/draft - Failed to create draft: startAt=%s, error=%v", req.StartAt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/draft - Created draft id=%s, startAt=%s", result.BookingID, result.StartAt)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
