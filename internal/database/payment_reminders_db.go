package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var remindersTable = pgTable[models.Reminder]{
	name:    CollectionReminders,
	columns: []string{"name", "amount", "due_date", "recurring", "is_paid", "paid_date", "created_at"},
	values: func(r models.Reminder) []any {
		return []any{r.Name, r.Amount, r.DueDate, r.Recurring, r.IsPaid, r.PaidDate, r.CreatedAt}
	},
	scan: func(row pgx.Row) (models.Reminder, error) {
		var r models.Reminder
		err := row.Scan(
			&r.ID,
			&r.Name,
			&r.Amount,
			&r.DueDate,
			&r.Recurring,
			&r.IsPaid,
			&r.PaidDate,
			&r.CreatedAt,
		)
		return r, err
	},
}
