package repository

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// DefaultCategories создаются один раз, если коллекция пуста
var DefaultCategories = []models.Category{
	{Name: "Gaji", Type: models.TypeIncome, Icon: "💼", Color: "#10b981"},
	{Name: "Bonus", Type: models.TypeIncome, Icon: "🎁", Color: "#06b6d4"},
	{Name: "Investasi", Type: models.TypeIncome, Icon: "📈", Color: "#8b5cf6"},
	{Name: "Lainnya", Type: models.TypeIncome, Icon: "💰", Color: "#64748b"},
	{Name: "Makanan", Type: models.TypeExpense, Icon: "🍔", Color: "#f97316"},
	{Name: "Transportasi", Type: models.TypeExpense, Icon: "🚗", Color: "#eab308"},
	{Name: "Belanja", Type: models.TypeExpense, Icon: "🛒", Color: "#ec4899"},
	{Name: "Tagihan", Type: models.TypeExpense, Icon: "📄", Color: "#8b5cf6"},
	{Name: "Kesehatan", Type: models.TypeExpense, Icon: "💊", Color: "#ef4444"},
	{Name: "Hiburan", Type: models.TypeExpense, Icon: "🎮", Color: "#6366f1"},
	{Name: "Pendidikan", Type: models.TypeExpense, Icon: "📚", Color: "#0ea5e9"},
	{Name: "Lainnya", Type: models.TypeExpense, Icon: "📦", Color: "#64748b"},
}

// NewCategoryCache создает кэш категорий. Категории не меняются после заполнения,
// поэтому инвалидация не нужна.
func NewCategoryCache() (*ristretto.Cache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания кэша категорий: %w", err)
	}
	return cache, nil
}

// SeedCategories заполняет категории по умолчанию, если их еще нет.
// Возвращает количество добавленных категорий.
func (r *Repository) SeedCategories(ctx context.Context) (int, error) {
	existing, err := r.store.Categories().All(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, c := range DefaultCategories {
		if _, err := r.store.Categories().Add(ctx, c); err != nil {
			return i, err
		}
	}
	return len(DefaultCategories), nil
}

func (r *Repository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return r.store.Categories().All(ctx)
}

func (r *Repository) GetCategoriesByType(ctx context.Context, catType string) ([]models.Category, error) {
	all, err := r.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Category, 0, len(all))
	for _, c := range all {
		if c.Type == catType {
			result = append(result, c)
		}
	}
	return result, nil
}

// GetCategory возвращает категорию по id, при наличии кэша - из него
func (r *Repository) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	if r.categories != nil {
		if cached, ok := r.categories.Get(id); ok {
			c := cached.(models.Category)
			return &c, nil
		}
	}

	c, err := r.store.Categories().Get(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	if r.categories != nil {
		r.categories.Set(id, *c, 1)
	}
	return c, nil
}

// resolveCategory подставляет FallbackCategory для отсутствующей категории
func resolveCategory(byID map[int64]models.Category, id int64) models.Category {
	if c, ok := byID[id]; ok {
		return c
	}
	fallback := models.FallbackCategory
	fallback.ID = id
	return fallback
}

func (r *Repository) categoryIndex(ctx context.Context) (map[int64]models.Category, error) {
	all, err := r.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
	return byID, nil
}
