package create_booking_draft

import (
	"context"

	createBookingDraft "github.com/ksudate/WFC-BookingService/internal/usecase/create_booking_draft"
)

type CreateBookingDraftUseCase interface {
	Execute(ctx context.Context, req *createBookingDraft.Request) (*createBookingDraft.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
