package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var goalsTable = pgTable[models.Goal]{
	name:    CollectionGoals,
	columns: []string{"name", "target", "icon", "saved", "completed", "created_at"},
	values: func(g models.Goal) []any {
		return []any{g.Name, g.Target, g.Icon, g.Saved, g.Completed, g.CreatedAt}
	},
	scan: func(row pgx.Row) (models.Goal, error) {
		var g models.Goal
		err := row.Scan(&g.ID, &g.Name, &g.Target, &g.Icon, &g.Saved, &g.Completed, &g.CreatedAt)
		return g, err
	},
}
