package check_eligibility

import (
	checkEligibility "github.com/ksudate/WFC-BookingService/internal/usecase/check_booking_eligibility"
)

// EligibilityResponse HTTP response model
type EligibilityResponse struct {
	Bookable        bool     `json:"bookable"`
	Reasons         []string `json:"reasons"`
	StartAt         string   `json:"startAt"`
	EndAt           string   `json:"endAt"`
	DurationMinutes int      `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkEligibility.Response) *EligibilityResponse {
	return &EligibilityResponse{
		Bookable:        resp.Bookable,
		Reasons:         resp.Reasons,
		StartAt:         resp.StartAt,
		EndAt:           resp.EndAt,
		DurationMinutes: resp.DurationMinutes,
	}
}
