package googlecalendar

// EventDateTime момент начала/конца события.
// Обычные события приходят с dateTime, события "на весь день" - с date (YYYY-MM-DD).
type EventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

// Event событие календаря (усечённая форма Calendar API v3)
type Event struct {
	ID          string         `json:"id,omitempty"`
	Status      string         `json:"status,omitempty"` // "confirmed", "tentative", "cancelled"
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Start       *EventDateTime `json:"start,omitempty"`
	End         *EventDateTime `json:"end,omitempty"`
}

// StatusCancelled статус отменённого события
const StatusCancelled = "cancelled"

// IsCancelled true для отменённого события
func (e *Event) IsCancelled() bool {
	return e.Status == StatusCancelled
}

// listEventsResponse ответ events.list
type listEventsResponse struct {
	Items         []Event `json:"items"`
	NextPageToken string  `json:"nextPageToken"`
}

// InsertEventParams параметры события для events.insert
type InsertEventParams struct {
	Summary     string
	Description string
	StartAt     string // canonical ISO
	EndAt       string // canonical ISO
}

// ErrorResponse модель ошибки Google API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
