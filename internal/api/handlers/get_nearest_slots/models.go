package get_nearest_slots

import (
	getNearestSlots "github.com/ksudate/WFC-BookingService/internal/usecase/get_nearest_slots"
)

// NearestSlotsResponse HTTP response model
type NearestSlotsResponse struct {
	From            string        `json:"from"`
	DurationMinutes int           `json:"durationMinutes"`
	Slots           []NearestSlot `json:"slots"`
}

// NearestSlot модель свободного слота
type NearestSlot struct {
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getNearestSlots.Response) *NearestSlotsResponse {
	slots := make([]NearestSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = NearestSlot{
			StartAt: slot.StartAt,
			EndAt:   slot.EndAt,
		}
	}

	return &NearestSlotsResponse{
		From:            resp.From,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
