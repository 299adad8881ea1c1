package calendar

import (
	"context"

	"github.com/ksudate/WFC-BookingService/internal/integrations/googlecalendar"
)

// CalendarClient интерфейс низкоуровневого клиента Calendar API
type CalendarClient interface {
	ListEvents(ctx context.Context, calendarID, timeMin, timeMax string) ([]googlecalendar.Event, error)
	InsertEvent(ctx context.Context, calendarID string, params googlecalendar.InsertEventParams) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
