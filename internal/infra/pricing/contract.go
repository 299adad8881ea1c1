package pricing

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/integrations/googlesheets"
)

// SheetsClient интерфейс низкоуровневого клиента Sheets API
type SheetsClient interface {
	ListSheetNames(ctx context.Context, spreadsheetID string) ([]string, error)
	GetValues(ctx context.Context, spreadsheetID, cellRange string) (*googlesheets.ValueRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
