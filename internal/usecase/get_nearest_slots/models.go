package get_nearest_slots

// Значения по умолчанию и границы параметров поиска
const (
	DefaultLimit = 5
	MaxLimit     = 20

	DefaultSearchDays = 14
	MinSearchDays     = 1
	MaxSearchDays     = 90
)

// Request модель запроса на поиск ближайших свободных слотов
type Request struct {
	From            *string // Начало поиска в каноническом формате (по умолчанию текущее время)
	DurationMinutes int     // Длительность искомого слота в минутах
	Limit           *int    // Максимум слотов в ответе (по умолчанию 5, максимум 20)
	SearchDays      *int    // Глубина поиска в днях (по умолчанию 14, от 1 до 90)
}

// Response модель ответа со списком ближайших свободных слотов
type Response struct {
	From            string // Начало поиска, округленное вверх до часа
	DurationMinutes int    // Длительность искомого слота
	Slots           []Slot // Свободные слоты в порядке возрастания времени
}

// Slot модель свободного слота
type Slot struct {
	StartAt string // Начало слота в каноническом формате
	EndAt   string // Конец слота в каноническом формате
}
