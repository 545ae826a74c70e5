package models

import "time"

// Reminder - напоминание об оплате счета
type Reminder struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Amount    int64      `json:"amount" db:"amount"`
	DueDate   string     `json:"due_date" db:"due_date"` // YYYY-MM-DD
	Recurring bool       `json:"recurring" db:"recurring"`
	IsPaid    bool       `json:"is_paid" db:"is_paid"`
	PaidDate  *time.Time `json:"paid_date,omitempty" db:"paid_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

func (r Reminder) WithID(id int64) Reminder {
	r.ID = id
	return r
}

// IsOverdue - не оплачено и срок уже прошел. today в формате YYYY-MM-DD.
func (r *Reminder) IsOverdue(today string) bool {
	return !r.IsPaid && r.DueDate < today
}
