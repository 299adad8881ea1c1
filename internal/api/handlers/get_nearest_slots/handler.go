package get_nearest_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
	getNearestSlots "github.com/ksudate/WFC-BookingService/internal/usecase/get_nearest_slots"
	"github.com/ksudate/WFC-BookingService/pkg/ptr"
)

const (
	msgMissingDuration   = "параметр durationMinutes обязателен"
	msgInvalidDuration   = "некорректное значение durationMinutes"
	msgInvalidLimit      = "некорректное значение limit"
	msgInvalidSearchDays = "некорректное значение searchDays"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetNearestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetNearestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/nearest-slots
// Query params: durationMinutes (required), from, limit, searchDays (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	durationStr := query.Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /bookings/nearest-slots - Missing durationMinutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /bookings/nearest-slots - Invalid durationMinutes: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq := &getNearestSlots.Request{
		DurationMinutes: durationMinutes,
	}

	if from := query.Get("from"); from != "" {
		useCaseReq.From = ptr.Ptr(from)
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			h.logger.Warn("GET /bookings/nearest-slots - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		useCaseReq.Limit = ptr.Ptr(limit)
	}

	if searchDaysStr := query.Get("searchDays"); searchDaysStr != "" {
		searchDays, err := strconv.Atoi(searchDaysStr)
		if err != nil {
			h.logger.Warn("GET /bookings/nearest-slots - Invalid searchDays: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSearchDays)
			return
		}
		useCaseReq.SearchDays = ptr.Ptr(searchDays)
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getNearestSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/nearest-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/nearest-slots - Failed to find slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/nearest-slots - Found %d slots from=%s", len(result.Slots), result.From)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
