package domain

import "fmt"

// Money стоимость в иенах (JPY). Сумма - целое число в допустимых пределах.
type Money struct {
	amount int64
}

const (
	MinMoneyAmount int64 = 0
	MaxMoneyAmount int64 = 1_000_000_000
)

// MoneyCurrency единственная поддерживаемая валюта
const MoneyCurrency = "JPY"

// NewMoney создает Money из суммы в иенах
func NewMoney(amount int64) (Money, error) {
	if amount < MinMoneyAmount || amount > MaxMoneyAmount {
		return Money{}, fmt.Errorf("%w: money amount must be %d..%d, got %d", ErrValue, MinMoneyAmount, MaxMoneyAmount, amount)
	}
	return Money{amount: amount}, nil
}

// Amount сумма в иенах
func (m Money) Amount() int64 {
	return m.amount
}

// Currency валюта (всегда JPY)
func (m Money) Currency() string {
	return MoneyCurrency
}

// Add сумма двух значений
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount + other.amount)
}

// Subtract разность; отрицательный результат недопустим
func (m Money) Subtract(other Money) (Money, error) {
	return NewMoney(m.amount - other.amount)
}
