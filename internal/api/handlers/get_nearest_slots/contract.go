package get_nearest_slots

import (
	"context"

	getNearestSlots "github.com/ksudate/WFC-BookingService/internal/usecase/get_nearest_slots"
)

type GetNearestSlotsUseCase interface {
	Execute(ctx context.Context, req *getNearestSlots.Request) (*getNearestSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
