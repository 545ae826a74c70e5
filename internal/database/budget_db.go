package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// limit - зарезервированное слово в SQL, поэтому колонка называется limit_amount
var budgetsTable = pgTable[models.Budget]{
	name:    CollectionBudgets,
	columns: []string{"category_id", "limit_amount", "month", "created_at"},
	values: func(b models.Budget) []any {
		return []any{b.CategoryID, b.Limit, b.Month, b.CreatedAt}
	},
	scan: func(row pgx.Row) (models.Budget, error) {
		var b models.Budget
		err := row.Scan(&b.ID, &b.CategoryID, &b.Limit, &b.Month, &b.CreatedAt)
		return b, err
	},
}
