package get_car_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
	"github.com/ksudate/WFC-BookingService/internal/service/pricing"
)

const (
	msgMissingCarID = "ID автомобиля обязателен"
	msgCarNotFound  = "автомобиль не найден в прайс-листе"
)

type Handler struct {
	pricingService PricingService
	logger         Logger
}

func NewHandler(pricingService PricingService, logger Logger) *Handler {
	return &Handler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// Handle GET /api/v1/pricing/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["carId"]
	if carID == "" {
		h.logger.Warn("GET /pricing/cars/{id} - Missing car ID")
		handlers.RespondBadRequest(w, msgMissingCarID)
		return
	}

	result, err := h.pricingService.GetCarPricing(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrCarNotFound):
			h.logger.Warn("GET /pricing/cars/{id} - Car not found: id=%s", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("GET /pricing/cars/{id} - Failed to get pricing: id=%s, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pricing/cars/{id} - Retrieved pricing for id=%s", carID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
