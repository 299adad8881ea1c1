package get_manufacturer_cars

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

type PricingService interface {
	ListCarsByManufacturer(ctx context.Context, manufacturerID string) ([]models.CarSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
