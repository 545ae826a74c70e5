package models

import "time"

type Goal struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Target    int64     `json:"target" db:"target"`
	Icon      string    `json:"icon" db:"icon"`
	Saved     int64     `json:"saved" db:"saved"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (g Goal) WithID(id int64) Goal {
	g.ID = id
	return g
}

// Remaining возвращает сколько осталось накопить, не меньше нуля
func (g *Goal) Remaining() int64 {
	if g.Saved >= g.Target {
		return 0
	}
	return g.Target - g.Saved
}

// Contribute добавляет взнос и отмечает цель достигнутой.
// Достигнутая цель обратно не сбрасывается.
func (g *Goal) Contribute(amount int64) {
	g.Saved += amount
	if g.Saved >= g.Target {
		g.Completed = true
	}
}
