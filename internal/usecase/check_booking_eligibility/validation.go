package check_booking_eligibility

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartAt == "" {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.BufferMinutes != nil && *req.BufferMinutes < 0 {
		return fmt.Errorf("%w: bufferMinutes must be non-negative", ErrInvalidInput)
	}

	return nil
}
