package create_booking_draft

// Request модель запроса на создание черновика бронирования
type Request struct {
	CustomerName    string   // Имя клиента
	PhoneNumber     string   // Телефон клиента в любом привычном написании
	CarID           string   // ID модели автомобиля из прайс-листа
	MenuID          string   // ID меню работ
	OptionIDs       []string // ID дополнительных опций (без дублей)
	StartAt         string   // Начало слота в каноническом формате
	DurationMinutes int      // Длительность слота в минутах
	PriceAmount     int64    // Стоимость работ в йенах
}

// Response модель ответа с созданным черновиком бронирования.
// Доменный агрегат наружу не отдается.
type Response struct {
	BookingID       string   // Сгенерированный ID бронирования
	CustomerName    string   // Имя клиента
	PhoneNumber     string   // Телефон клиента в каноническом виде
	CarID           string   // ID модели автомобиля
	MenuID          string   // ID меню работ
	OptionIDs       []string // ID дополнительных опций
	StartAt         string   // Нормализованное начало слота
	DurationMinutes int      // Длительность слота в минутах
	PriceAmount     int64    // Стоимость работ
	PriceCurrency   string   // Валюта стоимости, всегда JPY
	Status          string   // Статус бронирования, всегда Draft
	CalendarEventID *string  // ID события календаря (у черновика отсутствует)
}
