package create_provisional_booking

// Request модель запроса на создание предварительного бронирования
type Request struct {
	CarID           string // ID модели автомобиля из прайс-листа
	StartAt         string // Начало слота в каноническом формате
	DurationMinutes int    // Длительность слота в минутах

	// Обязательные данные клиента
	CustomerName string
	PhoneNumber  string

	// Необязательные данные для отображения в календаре
	CarModelName string // Название модели, например "プリウス"
	MenuLabel    string // Название работ, например "リア5面"
	Channel      string // Канал обращения, например "LINE"
}

// Response модель ответа с созданным предварительным бронированием
type Response struct {
	CarID           string // ID модели автомобиля
	StartAt         string // Нормализованное начало слота
	DurationMinutes int    // Длительность слота в минутах
	CalendarEventID string // ID созданного события календаря
}
