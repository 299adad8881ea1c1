package pricing

import "errors"

var (
	// ErrManufacturerNotFound возвращается для неизвестного производителя
	ErrManufacturerNotFound = errors.New("manufacturer not found")

	// ErrCarNotFound возвращается, когда модель отсутствует в прайс-листе
	ErrCarNotFound = errors.New("car not found in price list")

	// ErrInternal возвращается при ошибках источника прайс-листа
	ErrInternal = errors.New("pricing service: internal error")
)
