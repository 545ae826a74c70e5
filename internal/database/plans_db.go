package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var plansTable = pgTable[models.Plan]{
	name:    CollectionPlans,
	columns: []string{"name", "amount", "priority", "need_want", "note", "completed", "created_at"},
	values: func(p models.Plan) []any {
		return []any{p.Name, p.Amount, p.Priority, p.NeedWant, p.Note, p.Completed, p.CreatedAt}
	},
	scan: func(row pgx.Row) (models.Plan, error) {
		var p models.Plan
		err := row.Scan(&p.ID, &p.Name, &p.Amount, &p.Priority, &p.NeedWant, &p.Note, &p.Completed, &p.CreatedAt)
		return p, err
	},
}
