package create_booking_draft

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

type fakeAvailabilityService struct {
	duplicated bool
	err        error
	calls      int
	lastRange  domain.TimeRange
}

func (f *fakeAvailabilityService) IsDuplicated(_ context.Context, timeRange domain.TimeRange) (bool, error) {
	f.calls++
	f.lastRange = timeRange
	return f.duplicated, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		CustomerName:    "棚原",
		PhoneNumber:     "090-1234-5678",
		CarID:           "toyota-プリウス",
		MenuID:          "front-set",
		OptionIDs:       []string{"option-heat-cut"},
		StartAt:         "2026-09-01T10:00:00.000+09:00",
		DurationMinutes: 120,
		PriceAmount:     30000,
	}
}

func TestExecute(t *testing.T) {
	t.Run("success creates a draft without a calendar event", func(t *testing.T) {
		avail := &fakeAvailabilityService{}
		uc := NewUseCase(avail, nopLogger{})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.BookingID)
		assert.Equal(t, "棚原", resp.CustomerName)
		assert.Equal(t, "+819012345678", resp.PhoneNumber)
		assert.Equal(t, "toyota-プリウス", resp.CarID)
		assert.Equal(t, "front-set", resp.MenuID)
		assert.Equal(t, []string{"option-heat-cut"}, resp.OptionIDs)
		assert.Equal(t, "2026-09-01T10:00:00.000+09:00", resp.StartAt)
		assert.Equal(t, 120, resp.DurationMinutes)
		assert.Equal(t, int64(30000), resp.PriceAmount)
		assert.Equal(t, "JPY", resp.PriceCurrency)
		assert.Equal(t, "Draft", resp.Status)
		assert.Nil(t, resp.CalendarEventID)
	})

	t.Run("duplication check receives the requested range", func(t *testing.T) {
		avail := &fakeAvailabilityService{}
		uc := NewUseCase(avail, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, 1, avail.calls)
		assert.Equal(t, "2026-09-01T10:00:00.000+09:00", avail.lastRange.Start().String())
		assert.Equal(t, "2026-09-01T12:00:00.000+09:00", avail.lastRange.End().String())
	})

	t.Run("each draft gets a fresh booking id", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityService{}, nopLogger{})

		first, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.BookingID, second.BookingID)
	})

	t.Run("occupied slot is a duplication error", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityService{duplicated: true}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotDuplicated)
	})

	t.Run("duplicate option ids are an input error", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityService{}, nopLogger{})

		req := validRequest()
		req.OptionIDs = []string{"option-heat-cut", "option-heat-cut"}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown menu id is an input error", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityService{}, nopLogger{})

		req := validRequest()
		req.MenuID = "no-such-menu"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing required fields are input errors", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityService{}, nopLogger{})

		for _, mutate := range []func(*Request){
			func(r *Request) { r.CustomerName = "" },
			func(r *Request) { r.PhoneNumber = "" },
			func(r *Request) { r.CarID = "" },
			func(r *Request) { r.MenuID = "" },
			func(r *Request) { r.StartAt = "" },
			func(r *Request) { r.DurationMinutes = 0 },
			func(r *Request) { r.PriceAmount = -1 },
		} {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("duplication check failure is internal", func(t *testing.T) {
		uc := NewUseCase(&fakeAvailabilityService{err: errors.New("calendar down")}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
