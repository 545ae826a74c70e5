package models

import "time"

// Plan - запланированная трата, не связанная с транзакциями
type Plan struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Amount    int64     `json:"amount" db:"amount"`
	Priority  int       `json:"priority" db:"priority"` // 1..5
	NeedWant  string    `json:"need_want" db:"need_want"`
	Note      string    `json:"note,omitempty" db:"note"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (p Plan) WithID(id int64) Plan {
	p.ID = id
	return p
}
