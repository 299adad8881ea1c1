package pricing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraPricing "github.com/ksudate/WFC-BookingService/internal/infra/pricing"
	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

type fakePricingQuery struct {
	manufacturers []models.ManufacturerSummary
	cars          []models.CarSummary
	carPricing    *models.CarPricing
	err           error
}

func (f *fakePricingQuery) ListManufacturers(_ context.Context) ([]models.ManufacturerSummary, error) {
	return f.manufacturers, f.err
}

func (f *fakePricingQuery) ListCarsByManufacturer(_ context.Context, _ string) ([]models.CarSummary, error) {
	return f.cars, f.err
}

func (f *fakePricingQuery) FindCarPricing(_ context.Context, _ string) (*models.CarPricing, error) {
	return f.carPricing, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListManufacturers(t *testing.T) {
	t.Run("passes the query result through", func(t *testing.T) {
		query := &fakePricingQuery{manufacturers: []models.ManufacturerSummary{
			{ID: "toyota", Name: "トヨタ", CarCount: 12},
		}}
		service := NewService(query, nopLogger{})

		manufacturers, err := service.ListManufacturers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, query.manufacturers, manufacturers)
	})

	t.Run("query failure is internal", func(t *testing.T) {
		service := NewService(&fakePricingQuery{err: errors.New("boom")}, nopLogger{})

		_, err := service.ListManufacturers(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestListCarsByManufacturer(t *testing.T) {
	t.Run("unknown manufacturer maps to not found", func(t *testing.T) {
		query := &fakePricingQuery{
			err: fmt.Errorf("%w: ferrari", infraPricing.ErrUnknownManufacturer),
		}
		service := NewService(query, nopLogger{})

		_, err := service.ListCarsByManufacturer(context.Background(), "ferrari")
		assert.ErrorIs(t, err, ErrManufacturerNotFound)
	})

	t.Run("other failures are internal", func(t *testing.T) {
		service := NewService(&fakePricingQuery{err: errors.New("boom")}, nopLogger{})

		_, err := service.ListCarsByManufacturer(context.Background(), "toyota")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetCarPricing(t *testing.T) {
	t.Run("missing car maps to not found", func(t *testing.T) {
		service := NewService(&fakePricingQuery{carPricing: nil}, nopLogger{})

		_, err := service.GetCarPricing(context.Background(), "toyota-カローラ")
		assert.ErrorIs(t, err, ErrCarNotFound)
	})

	t.Run("found car is returned as is", func(t *testing.T) {
		carPricing := &models.CarPricing{CarID: "toyota-プリウス", CarName: "プリウス"}
		service := NewService(&fakePricingQuery{carPricing: carPricing}, nopLogger{})

		got, err := service.GetCarPricing(context.Background(), "toyota-プリウス")
		require.NoError(t, err)
		assert.Equal(t, carPricing, got)
	})
}
