package get_car_pricing

import (
	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

// CarPricingResponse HTTP response model
type CarPricingResponse struct {
	CarID        string      `json:"carId"`
	CarName      string      `json:"carName"`
	CarReading   string      `json:"carReading"`
	Manufacturer string      `json:"manufacturer"`
	Prices       []MenuPrice `json:"prices"`
}

// MenuPrice цена работ по меню; Amount = null, если цена не указана в прайс-листе
type MenuPrice struct {
	MenuID   string `json:"menuId"`
	MenuName string `json:"menuName"`
	Amount   *int64 `json:"amount"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(pricing *models.CarPricing) *CarPricingResponse {
	prices := make([]MenuPrice, len(pricing.Prices))
	for i, price := range pricing.Prices {
		prices[i] = MenuPrice{
			MenuID:   price.MenuID,
			MenuName: price.MenuName,
			Amount:   price.Amount,
		}
	}

	return &CarPricingResponse{
		CarID:        pricing.CarID,
		CarName:      pricing.CarName,
		CarReading:   pricing.CarReading,
		Manufacturer: pricing.Manufacturer,
		Prices:       prices,
	}
}
