package check_booking_eligibility

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// reasonOccupied причина отказа при пересечении с занятым слотом
const reasonOccupied = "slot already occupied or insufficient buffer"
