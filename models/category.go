package models

type Category struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Type  string `json:"type" db:"type"`
	Icon  string `json:"icon" db:"icon"`
	Color string `json:"color" db:"color"`
}

func (c Category) WithID(id int64) Category {
	c.ID = id
	return c
}

// FallbackCategory подставляется, когда транзакция ссылается на несуществующую категорию
var FallbackCategory = Category{Name: "Lainnya", Icon: "📦", Color: "#64748b"}
