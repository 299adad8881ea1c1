package check_booking_eligibility

// Request модель запроса на проверку возможности бронирования
type Request struct {
	StartAt         string // Начало слота в каноническом формате
	DurationMinutes int    // Длительность слота в минутах
	BufferMinutes   *int   // Буфер между бронированиями (по умолчанию 60 минут)
}

// Response модель ответа проверки возможности бронирования
type Response struct {
	Bookable        bool     // Можно ли забронировать слот
	Reasons         []string // Причины отказа (пустой список при Bookable=true)
	StartAt         string   // Нормализованное начало слота
	EndAt           string   // Нормализованный конец слота
	DurationMinutes int      // Длительность слота в минутах
}
