package pricing

import "errors"

var (
	// ErrUnknownManufacturer возвращается, когда ID производителя не сопоставлен ни с одним листом прайс-листа
	ErrUnknownManufacturer = errors.New("pricing.query: unknown manufacturer id")

	// ErrListSheets возвращается при ошибке получения списка листов таблицы
	ErrListSheets = errors.New("pricing.query: failed to list spreadsheet sheets")

	// ErrFetchValues возвращается при ошибке чтения ячеек листа
	ErrFetchValues = errors.New("pricing.query: failed to fetch sheet values")
)
