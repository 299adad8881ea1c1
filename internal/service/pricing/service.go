package pricing

import (
	"context"
	"errors"
	"fmt"

	infraPricing "github.com/ksudate/WFC-BookingService/internal/infra/pricing"
	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

// Service чтение прайс-листа.
// Расчёт стоимости бронирования сервис не выполняет - только lookup.
type Service struct {
	pricingQuery PricingQuery
	logger       Logger
}

// NewService создает сервис прайс-листа
func NewService(pricingQuery PricingQuery, logger Logger) *Service {
	return &Service{
		pricingQuery: pricingQuery,
		logger:       logger,
	}
}

// ListManufacturers возвращает всех производителей из прайс-листа
func (s *Service) ListManufacturers(ctx context.Context) ([]models.ManufacturerSummary, error) {
	manufacturers, err := s.pricingQuery.ListManufacturers(ctx)
	if err != nil {
		s.logger.Error("ListManufacturers: pricing query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ListManufacturers: fetched %d manufacturers", len(manufacturers))
	return manufacturers, nil
}

// ListCarsByManufacturer возвращает модели указанного производителя
func (s *Service) ListCarsByManufacturer(ctx context.Context, manufacturerID string) ([]models.CarSummary, error) {
	cars, err := s.pricingQuery.ListCarsByManufacturer(ctx, manufacturerID)
	if err != nil {
		if errors.Is(err, infraPricing.ErrUnknownManufacturer) {
			s.logger.Warn("ListCarsByManufacturer: unknown manufacturer id=%s", manufacturerID)
			return nil, ErrManufacturerNotFound
		}
		s.logger.Error("ListCarsByManufacturer: pricing query failed for manufacturer=%s: %v", manufacturerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ListCarsByManufacturer: fetched %d cars for manufacturer=%s", len(cars), manufacturerID)
	return cars, nil
}

// GetCarPricing возвращает прайс-лист модели
func (s *Service) GetCarPricing(ctx context.Context, carID string) (*models.CarPricing, error) {
	carPricing, err := s.pricingQuery.FindCarPricing(ctx, carID)
	if err != nil {
		s.logger.Error("GetCarPricing: pricing query failed for car=%s: %v", carID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if carPricing == nil {
		s.logger.Warn("GetCarPricing: car id=%s not found in price list", carID)
		return nil, ErrCarNotFound
	}

	return carPricing, nil
}
