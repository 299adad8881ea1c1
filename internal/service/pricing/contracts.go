package pricing

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

// PricingQuery порт к источнику прайс-листа (Google Sheets)
type PricingQuery interface {
	ListManufacturers(ctx context.Context) ([]models.ManufacturerSummary, error)
	ListCarsByManufacturer(ctx context.Context, manufacturerID string) ([]models.CarSummary, error)
	// FindCarPricing возвращает nil, если модель не найдена
	FindCarPricing(ctx context.Context, carID string) (*models.CarPricing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
