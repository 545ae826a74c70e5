package models

import "time"

type Budget struct {
	ID         int64     `json:"id" db:"id"`
	CategoryID int64     `json:"category_id" db:"category_id"`
	Limit      int64     `json:"limit" db:"limit_amount"`
	Month      string    `json:"month" db:"month"` // YYYY-MM
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (b Budget) WithID(id int64) Budget {
	b.ID = id
	return b
}
