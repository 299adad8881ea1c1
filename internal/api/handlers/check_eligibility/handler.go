package check_eligibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
	checkEligibility "github.com/ksudate/WFC-BookingService/internal/usecase/check_booking_eligibility"
	"github.com/ksudate/WFC-BookingService/pkg/ptr"
)

const (
	msgMissingStartAt  = "параметр startAt обязателен"
	msgMissingDuration = "параметр durationMinutes обязателен"
	msgInvalidDuration = "некорректное значение durationMinutes"
	msgInvalidBuffer   = "некорректное значение bufferMinutes"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/eligibility
// Query params: startAt (required, canonical format), durationMinutes (required), bufferMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startAt := query.Get("startAt")
	if startAt == "" {
		h.logger.Warn("GET /bookings/eligibility - Missing startAt")
		handlers.RespondBadRequest(w, msgMissingStartAt)
		return
	}

	durationStr := query.Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /bookings/eligibility - Missing durationMinutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /bookings/eligibility - Invalid durationMinutes: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq := &checkEligibility.Request{
		StartAt:         startAt,
		DurationMinutes: durationMinutes,
	}

	if bufferStr := query.Get("bufferMinutes"); bufferStr != "" {
		bufferMinutes, err := strconv.Atoi(bufferStr)
		if err != nil {
			h.logger.Warn("GET /bookings/eligibility - Invalid bufferMinutes: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBuffer)
			return
		}
		useCaseReq.BufferMinutes = ptr.Ptr(bufferMinutes)
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkEligibility.ErrInvalidInput):
			h.logger.Warn("GET /bookings/eligibility - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/eligibility - Failed to check eligibility: startAt=%s, error=%v", startAt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/eligibility - Checked: startAt=%s, bookable=%t", startAt, result.Bookable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
