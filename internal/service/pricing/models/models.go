package models

// ManufacturerSummary сводка по производителю
type ManufacturerSummary struct {
	ID       string
	Name     string
	CarCount int
}

// CarSummary сводка по модели автомобиля
type CarSummary struct {
	ID           string
	Name         string
	NameReading  string
	Manufacturer string
}

// CarMenuPrice цена меню для конкретной модели.
// Amount == nil означает, что цена для этой позиции не задана в прайс-листе.
type CarMenuPrice struct {
	MenuID   string
	MenuName string
	Amount   *int64
}

// CarPricing прайс-лист модели автомобиля
type CarPricing struct {
	CarID        string
	CarName      string
	CarReading   string
	Manufacturer string
	Prices       []CarMenuPrice
}
