package create_provisional_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotBookable возвращается, когда слот нарушает правила бронирования
	ErrSlotNotBookable = errors.New("slot violates booking rules")

	// ErrSlotOccupied возвращается, когда слот пересекается с существующим событием
	ErrSlotOccupied = errors.New("slot already occupied or insufficient buffer")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
