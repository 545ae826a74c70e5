package models

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	Need = "need"
	Want = "want"
)

type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"` // Возможные значения: "income", "expense"
	Amount      int64     `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	Date        string    `json:"date" db:"date"`           // YYYY-MM-DD
	NeedWant    string    `json:"need_want" db:"need_want"` // Имеет смысл только для расходов
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (t Transaction) WithID(id int64) Transaction {
	t.ID = id
	return t
}

func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}
