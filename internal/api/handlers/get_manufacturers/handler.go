package get_manufacturers

import (
	"net/http"

	"github.com/ksudate/WFC-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/pricing/manufacturers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manufacturers, err := h.pricingService.ListManufacturers(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing/manufacturers - Failed to list manufacturers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing/manufacturers - Retrieved %d manufacturers", len(manufacturers))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(manufacturers))
}
