package calendar

import (
	"context"
	"fmt"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/integrations/googlecalendar"
)

// EventRepository создание событий во внешнем календаре
type EventRepository struct {
	client     CalendarClient
	calendarID string
	logger     Logger
}

// NewEventRepository создает репозиторий событий календаря
func NewEventRepository(client CalendarClient, calendarID string, logger Logger) *EventRepository {
	return &EventRepository{
		client:     client,
		calendarID: calendarID,
		logger:     logger,
	}
}

// CreateProvisionalEvent создает «предварительное» событие, занимающее слот,
// и возвращает идентификатор события
func (r *EventRepository) CreateProvisionalEvent(ctx context.Context, timeRange domain.TimeRange, title, description string) (domain.CalendarEventID, error) {
	eventID, err := r.client.InsertEvent(ctx, r.calendarID, googlecalendar.InsertEventParams{
		Summary:     title,
		Description: description,
		StartAt:     timeRange.Start().String(),
		EndAt:       timeRange.End().String(),
	})
	if err != nil {
		return domain.CalendarEventID{}, fmt.Errorf("%w: %v", ErrCreateEvent, err)
	}

	id, err := domain.ParseCalendarEventID(eventID)
	if err != nil {
		return domain.CalendarEventID{}, fmt.Errorf("%w: calendar returned invalid event id: %v", ErrCreateEvent, err)
	}

	r.logger.Info("CreateProvisionalEvent: created event id=%s for range %s - %s",
		id, timeRange.Start(), timeRange.End())

	return id, nil
}
