package database

import (
	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var categoriesTable = pgTable[models.Category]{
	name:    CollectionCategories,
	columns: []string{"name", "type", "icon", "color"},
	values: func(c models.Category) []any {
		return []any{c.Name, c.Type, c.Icon, c.Color}
	},
	scan: func(row pgx.Row) (models.Category, error) {
		var c models.Category
		err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Icon, &c.Color)
		return c, err
	},
}
