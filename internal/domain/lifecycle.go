package domain

// Таблица переходов статусов бронирования.
// Completed и Cancelled - терминальные состояния.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusDraft:     {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition true, если переход from -> to разрешен таблицей
func CanTransition(from, to BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition выполняет переход; недопустимый переход возвращает *TransitionError
func Transition(from, to BookingStatus) (BookingStatus, error) {
	if !CanTransition(from, to) {
		return from, &TransitionError{From: from, To: to}
	}
	return to, nil
}

// NextStatuses возвращает копию списка допустимых следующих статусов.
// Мутация результата не влияет на таблицу.
func NextStatuses(from BookingStatus) []BookingStatus {
	allowed := statusTransitions[from]
	out := make([]BookingStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal true, если из статуса нет исходящих переходов
func IsTerminal(status BookingStatus) bool {
	return len(statusTransitions[status]) == 0
}
