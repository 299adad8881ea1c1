package get_nearest_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.Limit != nil && *req.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}

	if req.SearchDays != nil && *req.SearchDays <= 0 {
		return fmt.Errorf("%w: searchDays must be positive", ErrInvalidInput)
	}

	return nil
}

// clampLimit приводит limit к допустимому диапазону
func clampLimit(limit *int) int {
	if limit == nil {
		return DefaultLimit
	}
	if *limit > MaxLimit {
		return MaxLimit
	}
	return *limit
}

// clampSearchDays приводит searchDays к допустимому диапазону
func clampSearchDays(searchDays *int) int {
	if searchDays == nil {
		return DefaultSearchDays
	}
	if *searchDays < MinSearchDays {
		return MinSearchDays
	}
	if *searchDays > MaxSearchDays {
		return MaxSearchDays
	}
	return *searchDays
}
