package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/internal/integrations/googlecalendar"
)

type fakeCalendarClient struct {
	events      []googlecalendar.Event
	listErr     error
	lastTimeMin string
	lastTimeMax string
}

func (f *fakeCalendarClient) ListEvents(_ context.Context, _, timeMin, timeMax string) ([]googlecalendar.Event, error) {
	f.lastTimeMin = timeMin
	f.lastTimeMax = timeMax
	return f.events, f.listErr
}

func (f *fakeCalendarClient) InsertEvent(_ context.Context, _ string, _ googlecalendar.InsertEventParams) (string, error) {
	return "", errors.New("not implemented")
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustInstant(t *testing.T, raw string) domain.Instant {
	t.Helper()
	instant, err := domain.ParseInstant(raw)
	require.NoError(t, err)
	return instant
}

func timedEvent(start, end string) googlecalendar.Event {
	return googlecalendar.Event{
		Status: "confirmed",
		Start:  &googlecalendar.EventDateTime{DateTime: start},
		End:    &googlecalendar.EventDateTime{DateTime: end},
	}
}

func TestListActiveEventRanges(t *testing.T) {
	timeMin := mustInstant(t, "2026-09-01T10:00:00.000+09:00")
	timeMax := mustInstant(t, "2026-09-01T18:00:00.000+09:00")

	t.Run("list window is extended a day behind", func(t *testing.T) {
		client := &fakeCalendarClient{}
		query := NewEventQuery(client, "primary", nopLogger{})

		_, err := query.ListActiveEventRanges(context.Background(), timeMin, timeMax)
		require.NoError(t, err)

		assert.Equal(t, "2026-08-31T10:00:00.000+09:00", client.lastTimeMin)
		assert.Equal(t, "2026-09-01T18:00:00.000+09:00", client.lastTimeMax)
	})

	t.Run("events outside the requested window are dropped", func(t *testing.T) {
		client := &fakeCalendarClient{events: []googlecalendar.Event{
			// Начался накануне, но окно не задевает
			timedEvent("2026-08-31T12:00:00.000+09:00", "2026-08-31T13:00:00.000+09:00"),
			// Начался накануне и продолжается в окне
			timedEvent("2026-08-31T23:00:00.000+09:00", "2026-09-01T11:00:00.000+09:00"),
			timedEvent("2026-09-01T14:00:00.000+09:00", "2026-09-01T15:00:00.000+09:00"),
		}}
		query := NewEventQuery(client, "primary", nopLogger{})

		ranges, err := query.ListActiveEventRanges(context.Background(), timeMin, timeMax)
		require.NoError(t, err)

		require.Len(t, ranges, 2)
		assert.Equal(t, mustInstant(t, "2026-08-31T23:00:00.000+09:00").UnixMilli(), ranges[0].Start)
	})

	t.Run("cancelled events are ignored", func(t *testing.T) {
		cancelled := timedEvent("2026-09-01T14:00:00.000+09:00", "2026-09-01T15:00:00.000+09:00")
		cancelled.Status = googlecalendar.StatusCancelled

		client := &fakeCalendarClient{events: []googlecalendar.Event{cancelled}}
		query := NewEventQuery(client, "primary", nopLogger{})

		ranges, err := query.ListActiveEventRanges(context.Background(), timeMin, timeMax)
		require.NoError(t, err)
		assert.Empty(t, ranges)
	})

	t.Run("all-day event occupies the whole JST day", func(t *testing.T) {
		client := &fakeCalendarClient{events: []googlecalendar.Event{
			{
				Status: "confirmed",
				Start:  &googlecalendar.EventDateTime{Date: "2026-09-01"},
				End:    &googlecalendar.EventDateTime{Date: "2026-09-02"},
			},
		}}
		query := NewEventQuery(client, "primary", nopLogger{})

		ranges, err := query.ListActiveEventRanges(context.Background(), timeMin, timeMax)
		require.NoError(t, err)

		require.Len(t, ranges, 1)
		assert.Equal(t, mustInstant(t, "2026-09-01T00:00:00.000+09:00").UnixMilli(), ranges[0].Start)
		assert.Equal(t, mustInstant(t, "2026-09-02T00:00:00.000+09:00").UnixMilli(), ranges[0].End)
	})

	t.Run("client failure is wrapped", func(t *testing.T) {
		client := &fakeCalendarClient{listErr: errors.New("boom")}
		query := NewEventQuery(client, "primary", nopLogger{})

		_, err := query.ListActiveEventRanges(context.Background(), timeMin, timeMax)
		assert.ErrorIs(t, err, ErrListEvents)
	})
}

func TestCountActiveEventsOverlappingBusinessHours(t *testing.T) {
	t.Run("counts only events overlapping business hours", func(t *testing.T) {
		client := &fakeCalendarClient{events: []googlecalendar.Event{
			// До открытия, в счётчик не попадает
			timedEvent("2026-09-01T08:00:00.000+09:00", "2026-09-01T09:00:00.000+09:00"),
			timedEvent("2026-09-01T10:00:00.000+09:00", "2026-09-01T12:00:00.000+09:00"),
			timedEvent("2026-09-01T17:30:00.000+09:00", "2026-09-01T19:00:00.000+09:00"),
		}}
		query := NewEventQuery(client, "primary", nopLogger{})

		count, err := query.CountActiveEventsOverlappingBusinessHours(context.Background(), "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("invalid day key is rejected", func(t *testing.T) {
		query := NewEventQuery(&fakeCalendarClient{}, "primary", nopLogger{})

		_, err := query.CountActiveEventsOverlappingBusinessHours(context.Background(), "09/01/2026")
		assert.ErrorIs(t, err, ErrInvalidDayKey)
	})
}

func TestExistsOverlappingSlot(t *testing.T) {
	slot := func(t *testing.T) domain.TimeRange {
		t.Helper()
		duration, err := domain.NewDuration(60)
		require.NoError(t, err)
		timeRange, err := domain.NewTimeRange(mustInstant(t, "2026-09-01T12:00:00.000+09:00"), duration)
		require.NoError(t, err)
		return timeRange
	}

	t.Run("event inside the buffer zone blocks the slot", func(t *testing.T) {
		client := &fakeCalendarClient{events: []googlecalendar.Event{
			timedEvent("2026-09-01T13:30:00.000+09:00", "2026-09-01T14:30:00.000+09:00"),
		}}
		query := NewEventQuery(client, "primary", nopLogger{})

		exists, err := query.ExistsOverlappingSlot(context.Background(), slot(t), 60)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("event right at the buffer edge does not block", func(t *testing.T) {
		client := &fakeCalendarClient{events: []googlecalendar.Event{
			timedEvent("2026-09-01T14:00:00.000+09:00", "2026-09-01T15:00:00.000+09:00"),
		}}
		query := NewEventQuery(client, "primary", nopLogger{})

		exists, err := query.ExistsOverlappingSlot(context.Background(), slot(t), 60)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("zero buffer checks only the slot itself", func(t *testing.T) {
		client := &fakeCalendarClient{events: []googlecalendar.Event{
			timedEvent("2026-09-01T13:00:00.000+09:00", "2026-09-01T14:00:00.000+09:00"),
		}}
		query := NewEventQuery(client, "primary", nopLogger{})

		exists, err := query.ExistsOverlappingSlot(context.Background(), slot(t), 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCreateProvisionalEvent(t *testing.T) {
	t.Run("returns the id assigned by the calendar", func(t *testing.T) {
		client := &insertRecordingClient{eventID: "evt-created-1"}
		repo := NewEventRepository(client, "primary", nopLogger{})

		duration, err := domain.NewDuration(120)
		require.NoError(t, err)
		timeRange, err := domain.NewTimeRange(mustInstant(t, "2026-09-01T10:00:00.000+09:00"), duration)
		require.NoError(t, err)

		id, err := repo.CreateProvisionalEvent(context.Background(), timeRange, "【仮】 （棚原）", "氏名: 棚原")
		require.NoError(t, err)

		assert.Equal(t, "evt-created-1", id.String())
		assert.Equal(t, "【仮】 （棚原）", client.lastParams.Summary)
		assert.Equal(t, "2026-09-01T10:00:00.000+09:00", client.lastParams.StartAt)
		assert.Equal(t, "2026-09-01T12:00:00.000+09:00", client.lastParams.EndAt)
	})

	t.Run("insert failure is wrapped", func(t *testing.T) {
		client := &insertRecordingClient{insertErr: errors.New("boom")}
		repo := NewEventRepository(client, "primary", nopLogger{})

		duration, err := domain.NewDuration(60)
		require.NoError(t, err)
		timeRange, err := domain.NewTimeRange(mustInstant(t, "2026-09-01T10:00:00.000+09:00"), duration)
		require.NoError(t, err)

		_, err = repo.CreateProvisionalEvent(context.Background(), timeRange, "t", "d")
		assert.ErrorIs(t, err, ErrCreateEvent)
	})
}

type insertRecordingClient struct {
	eventID    string
	insertErr  error
	lastParams googlecalendar.InsertEventParams
}

func (c *insertRecordingClient) ListEvents(_ context.Context, _, _, _ string) ([]googlecalendar.Event, error) {
	return nil, nil
}

func (c *insertRecordingClient) InsertEvent(_ context.Context, _ string, params googlecalendar.InsertEventParams) (string, error) {
	c.lastParams = params
	return c.eventID, c.insertErr
}
