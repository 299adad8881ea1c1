package pricing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/service/pricing/models"
)

// Структура прайс-листа в Google Sheets:
// один лист на производителя, данные начинаются с третьей строки,
// первые две строки - шапка таблицы.
const (
	sheetCellRange = "A1:K1000"
	headerRowCount = 2
)

// Индексы колонок прайс-листа (A=0)
const (
	colManufacturer   = 0
	colCarName        = 1
	colCarNameReading = 2
	colFrontSet       = 3
	colFront          = 4
	colFrontLeftRight = 5
	// колонка G (index 6) пустая
	colRearSet          = 7
	colRearLeftRight    = 8
	colQuarterLeftRight = 9
	colRear             = 10
)

// sheetToManufacturer сопоставляет имя листа с ID производителя.
// Листы, отсутствующие в мапе, игнорируются.
var sheetToManufacturer = map[string]string{
	"トヨタ":  "toyota",
	"レクサス": "lexus",
	"ホンダ":  "honda",
	"日産":   "nissan",
	"マツダ":  "mazda",
	"スバル":  "subaru",
	"スズキ":  "suzuki",
	"ダイハツ": "daihatsu",
	"三菱":   "mitsubishi",
}

// columnMenus задаёт порядок меню в ответе и привязку к колонкам
var columnMenus = []struct {
	column int
	menuID string
}{
	{colFrontSet, "front-set"},
	{colFront, "front"},
	{colFrontLeftRight, "front-left-right"},
	{colRearSet, "rear-set"},
	{colRearLeftRight, "rear-left-right"},
	{colQuarterLeftRight, "quarter-left-right"},
	{colRear, "rear"},
}

// SheetPricingQuery читает прайс-лист из Google Sheets
type SheetPricingQuery struct {
	client        SheetsClient
	spreadsheetID string
	logger        Logger
}

// NewSheetPricingQuery создает адаптер прайс-листа
func NewSheetPricingQuery(client SheetsClient, spreadsheetID string, logger Logger) *SheetPricingQuery {
	return &SheetPricingQuery{
		client:        client,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}
}

// ListManufacturers возвращает производителей, для которых в таблице есть лист
func (q *SheetPricingQuery) ListManufacturers(ctx context.Context) ([]models.ManufacturerSummary, error) {
	sheetNames, err := q.client.ListSheetNames(ctx, q.spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListSheets, err)
	}

	manufacturers := make([]models.ManufacturerSummary, 0, len(sheetNames))
	for _, sheetName := range sheetNames {
		manufacturerID, ok := sheetToManufacturer[sheetName]
		if !ok {
			continue
		}

		rows, err := q.fetchSheetRows(ctx, sheetName)
		if err != nil {
			return nil, err
		}

		carCount := 0
		for _, row := range rows {
			if cellValue(row, colCarName) != "" {
				carCount++
			}
		}

		manufacturers = append(manufacturers, models.ManufacturerSummary{
			ID: manufacturerID,
			// имя листа служит отображаемым именем производителя
			Name:     sheetName,
			CarCount: carCount,
		})
	}

	return manufacturers, nil
}

// ListCarsByManufacturer возвращает модели с листа указанного производителя
func (q *SheetPricingQuery) ListCarsByManufacturer(ctx context.Context, manufacturerID string) ([]models.CarSummary, error) {
	sheetName, ok := sheetNameByManufacturerID(manufacturerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownManufacturer, manufacturerID)
	}

	rows, err := q.fetchSheetRows(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	cars := make([]models.CarSummary, 0, len(rows))
	currentManufacturer := sheetName
	for _, row := range rows {
		if m := cellValue(row, colManufacturer); m != "" {
			currentManufacturer = m
		}

		carName := cellValue(row, colCarName)
		if carName == "" {
			continue
		}

		reading := cellValue(row, colCarNameReading)
		if reading == "" {
			reading = carName
		}

		cars = append(cars, models.CarSummary{
			ID:           carIDFromNames(manufacturerID, carName),
			Name:         carName,
			NameReading:  reading,
			Manufacturer: currentManufacturer,
		})
	}

	return cars, nil
}

// FindCarPricing ищет модель по ID во всех листах прайс-листа.
// Возвращает nil, если модель не найдена.
func (q *SheetPricingQuery) FindCarPricing(ctx context.Context, carID string) (*models.CarPricing, error) {
	sheetNames, err := q.client.ListSheetNames(ctx, q.spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListSheets, err)
	}

	for _, sheetName := range sheetNames {
		manufacturerID, ok := sheetToManufacturer[sheetName]
		if !ok {
			continue
		}

		rows, err := q.fetchSheetRows(ctx, sheetName)
		if err != nil {
			return nil, err
		}

		currentManufacturer := sheetName
		for _, row := range rows {
			if m := cellValue(row, colManufacturer); m != "" {
				currentManufacturer = m
			}

			carName := cellValue(row, colCarName)
			if carName == "" {
				continue
			}
			if carIDFromNames(manufacturerID, carName) != carID {
				continue
			}

			reading := cellValue(row, colCarNameReading)
			if reading == "" {
				reading = carName
			}

			return &models.CarPricing{
				CarID:        carID,
				CarName:      carName,
				CarReading:   reading,
				Manufacturer: currentManufacturer,
				Prices:       rowPrices(row),
			}, nil
		}
	}

	return nil, nil
}

func (q *SheetPricingQuery) fetchSheetRows(ctx context.Context, sheetName string) ([][]string, error) {
	valueRange, err := q.client.GetValues(ctx, q.spreadsheetID, fmt.Sprintf("%s!%s", sheetName, sheetCellRange))
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrFetchValues, sheetName, err)
	}

	if len(valueRange.Values) <= headerRowCount {
		return nil, nil
	}
	return valueRange.Values[headerRowCount:], nil
}

// rowPrices извлекает цены по меню из строки прайс-листа.
// Пустая или нечисловая ячейка означает отсутствие цены для меню.
func rowPrices(row []string) []models.CarMenuPrice {
	prices := make([]models.CarMenuPrice, 0, len(columnMenus))
	for _, cm := range columnMenus {
		menuID, err := domain.ParseMenuID(cm.menuID)
		if err != nil {
			continue
		}

		price := models.CarMenuPrice{
			MenuID:   menuID.String(),
			MenuName: menuID.DisplayName(),
		}
		if amount, ok := parsePrice(cellValue(row, cm.column)); ok {
			price.Amount = &amount
		}

		prices = append(prices, price)
	}
	return prices
}

func parsePrice(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	// цены в таблице отформатированы с разделителями разрядов
	cleaned := strings.NewReplacer(",", "", "¥", "", "円", "").Replace(raw)
	amount, err := strconv.ParseInt(strings.TrimSpace(cleaned), 10, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func cellValue(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func carIDFromNames(manufacturer, carName string) string {
	return manufacturer + "-" + carName
}

func sheetNameByManufacturerID(manufacturerID string) (string, bool) {
	for sheetName, id := range sheetToManufacturer {
		if id == manufacturerID {
			return sheetName, true
		}
	}
	return "", false
}
