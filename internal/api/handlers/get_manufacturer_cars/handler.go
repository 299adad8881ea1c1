package get_manufacturer_cars

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
	"github.com/ksudate/WFC-BookingService/internal/service/pricing"
)

const (
	msgMissingManufacturerID = "ID производителя обязателен"
	msgManufacturerNotFound  = "производитель не найден в прайс-листе"
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

// Handle GET /api/v1/pricing/manufacturers/{manufacturerId}/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manufacturerID := mux.Vars(r)["manufacturerId"]
	if manufacturerID == "" {
		h.logger.Warn("GET /pricing/manufacturers/{id}/cars - Missing manufacturer ID")
		handlers.RespondBadRequest(w, msgMissingManufacturerID)
		return
	}

	cars, err := h.pricingService.ListCarsByManufacturer(r.Context(), manufacturerID)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrManufacturerNotFound):
			h.logger.Warn("GET /pricing/manufacturers/{id}/cars - Manufacturer not found: id=%s", manufacturerID)
			handlers.RespondNotFound(w, msgManufacturerNotFound)

		default:
			h.logger.Error("GET /pricing/manufacturers/{id}/cars - Failed to list cars: id=%s, error=%v", manufacturerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pricing/manufacturers/{id}/cars - Retrieved %d cars for id=%s", len(cars), manufacturerID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(manufacturerID, cars))
}
