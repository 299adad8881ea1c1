package create_booking_draft

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}

	if req.CarID == "" {
		return fmt.Errorf("%w: carId is required", ErrInvalidInput)
	}

	if req.MenuID == "" {
		return fmt.Errorf("%w: menuId is required", ErrInvalidInput)
	}

	if req.StartAt == "" {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.PriceAmount < 0 {
		return fmt.Errorf("%w: priceAmount must be non-negative", ErrInvalidInput)
	}

	return nil
}
