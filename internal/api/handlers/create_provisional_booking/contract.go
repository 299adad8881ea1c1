package create_provisional_booking

import (
	"context"

	createProvisionalBooking "github.com/ksudate/WFC-BookingService/internal/usecase/create_provisional_booking"
)

type CreateProvisionalBookingUseCase interface {
	Execute(ctx context.Context, req *createProvisionalBooking.Request) (*createProvisionalBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
