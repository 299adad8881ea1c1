package get_manufacturers

import (
	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

// ManufacturersResponse HTTP response model
type ManufacturersResponse struct {
	Manufacturers []Manufacturer `json:"manufacturers"`
}

// Manufacturer модель производителя из прайс-листа
type Manufacturer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CarCount int    `json:"carCount"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(manufacturers []models.ManufacturerSummary) *ManufacturersResponse {
	result := make([]Manufacturer, len(manufacturers))
	for i, m := range manufacturers {
		result[i] = Manufacturer{
			ID:       m.ID,
			Name:     m.Name,
			CarCount: m.CarCount,
		}
	}

	return &ManufacturersResponse{Manufacturers: result}
}
