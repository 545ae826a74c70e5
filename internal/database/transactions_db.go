package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var transactionsTable = pgTable[models.Transaction]{
	name:    CollectionTransactions,
	columns: []string{"type", "amount", "description", "category_id", "date", "need_want", "created_at"},
	values: func(t models.Transaction) []any {
		return []any{t.Type, t.Amount, t.Description, t.CategoryID, t.Date, t.NeedWant, t.CreatedAt}
	},
	scan: func(row pgx.Row) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.ID,
			&t.Type,
			&t.Amount,
			&t.Description,
			&t.CategoryID,
			&t.Date,
			&t.NeedWant,
			&t.CreatedAt,
		)
		return t, err
	},
}
