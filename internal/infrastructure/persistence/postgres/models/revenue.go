// internal/infrastructure/persistence/postgres/models/revenue.go
package models

import (
	"strconv"
	"time"
)

// Revenue - одна запись дохода в таблице dc_revenues
type Revenue struct {
	ID       int64     `db:"id" json:"id"`
	Amount   string    `db:"amount" json:"amount"` // хранится текстом, как в исходной схеме
	Currency string    `db:"currency" json:"currency"`
	Platform string    `db:"platform" json:"platform"`
	Customer string    `db:"customer" json:"customer"`
	Project  string    `db:"project" json:"project"`
	Date     time.Time `db:"date" json:"date"`
}

// AmountInt возвращает сумму как целое число.
// Записи валидируются при создании, поэтому ошибки парсинга не ожидаются.
func (r *Revenue) AmountInt() int {
	value, _ := strconv.Atoi(r.Amount)
	return value
}
