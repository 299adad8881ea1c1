package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksudate/WFC-BookingService/internal/domain"
	"github.com/ksudate/WFC-BookingService/pkg/ptr"
)

type fakeOccupancyQuery struct {
	exists     bool
	err        error
	lastBuffer int
	calls      int
}

func (f *fakeOccupancyQuery) ExistsOverlappingSlot(_ context.Context, _ domain.TimeRange, bufferMinutes int) (bool, error) {
	f.calls++
	f.lastBuffer = bufferMinutes
	return f.exists, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRange(t *testing.T) domain.TimeRange {
	t.Helper()

	start, err := domain.ParseInstant("2026-09-01T10:00:00.000+09:00")
	require.NoError(t, err)
	duration, err := domain.NewDuration(60)
	require.NoError(t, err)
	tr, err := domain.NewTimeRange(start, duration)
	require.NoError(t, err)
	return tr
}

func TestIsUnavailable(t *testing.T) {
	t.Run("default buffer is 60 minutes", func(t *testing.T) {
		query := &fakeOccupancyQuery{exists: true}
		svc := NewService(query, nopLogger{})

		unavailable, err := svc.IsUnavailable(context.Background(), testRange(t), CheckOptions{})
		require.NoError(t, err)
		assert.True(t, unavailable)
		assert.Equal(t, domain.DefaultBufferMinutes, query.lastBuffer)
	})

	t.Run("explicit buffer overrides the default", func(t *testing.T) {
		query := &fakeOccupancyQuery{}
		svc := NewService(query, nopLogger{})

		unavailable, err := svc.IsUnavailable(context.Background(), testRange(t), CheckOptions{BufferMinutes: ptr.Ptr(30)})
		require.NoError(t, err)
		assert.False(t, unavailable)
		assert.Equal(t, 30, query.lastBuffer)
	})

	t.Run("negative buffer is rejected without querying", func(t *testing.T) {
		query := &fakeOccupancyQuery{}
		svc := NewService(query, nopLogger{})

		_, err := svc.IsUnavailable(context.Background(), testRange(t), CheckOptions{BufferMinutes: ptr.Ptr(-1)})
		assert.ErrorIs(t, err, ErrInvalidBuffer)
		assert.Zero(t, query.calls)
	})

	t.Run("query failure wraps ErrInternal", func(t *testing.T) {
		query := &fakeOccupancyQuery{err: errors.New("calendar down")}
		svc := NewService(query, nopLogger{})

		_, err := svc.IsUnavailable(context.Background(), testRange(t), CheckOptions{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestIsDuplicated(t *testing.T) {
	query := &fakeOccupancyQuery{exists: true, lastBuffer: -1}
	svc := NewService(query, nopLogger{})

	duplicated, err := svc.IsDuplicated(context.Background(), testRange(t))
	require.NoError(t, err)
	assert.True(t, duplicated)
	assert.Zero(t, query.lastBuffer, "проверка дублирования идет без буфера")
}
