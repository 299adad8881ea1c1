package get_manufacturers

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

type PricingService interface {
	ListManufacturers(ctx context.Context) ([]models.ManufacturerSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
