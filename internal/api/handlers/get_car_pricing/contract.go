package get_car_pricing

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

type PricingService interface {
	GetCarPricing(ctx context.Context, carID string) (*models.CarPricing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
