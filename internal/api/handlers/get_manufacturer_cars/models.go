package get_manufacturer_cars

import (
	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

// ManufacturerCarsResponse HTTP response model
type ManufacturerCarsResponse struct {
	ManufacturerID string `json:"manufacturerId"`
	Cars           []Car  `json:"cars"`
}

// Car модель автомобиля из прайс-листа
type Car struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameReading  string `json:"nameReading"`
	Manufacturer string `json:"manufacturer"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(manufacturerID string, cars []models.CarSummary) *ManufacturerCarsResponse {
	result := make([]Car, len(cars))
	for i, car := range cars {
		result[i] = Car{
			ID:           car.ID,
			Name:         car.Name,
			NameReading:  car.NameReading,
			Manufacturer: car.Manufacturer,
		}
	}

	return &ManufacturerCarsResponse{
		ManufacturerID: manufacturerID,
		Cars:           result,
	}
}
