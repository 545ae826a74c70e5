package repository

import (
	"context"
	"sort"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// AddBudget не проверяет уникальность пары (категория, месяц)
func (r *Repository) AddBudget(ctx context.Context, b models.Budget) (int64, error) {
	if err := validateBudget(b); err != nil {
		return 0, err
	}
	b.ID = 0
	b.CreatedAt = r.now()
	return r.store.Budgets().Add(ctx, b)
}

func (r *Repository) UpdateBudget(ctx context.Context, id int64, b models.Budget) error {
	if err := validateBudget(b); err != nil {
		return err
	}
	return r.store.Budgets().Put(ctx, id, b)
}

func (r *Repository) DeleteBudget(ctx context.Context, id int64) error {
	return r.store.Budgets().Remove(ctx, id)
}

func (r *Repository) GetBudget(ctx context.Context, id int64) (*models.Budget, error) {
	return r.store.Budgets().Get(ctx, id)
}

func (r *Repository) GetAllBudgets(ctx context.Context) ([]models.Budget, error) {
	budgets, err := r.store.Budgets().All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].ID < budgets[j].ID })
	return budgets, nil
}

// GetBudgetsByMonth возвращает бюджеты месяца в формате YYYY-MM
func (r *Repository) GetBudgetsByMonth(ctx context.Context, month string) ([]models.Budget, error) {
	budgets, err := r.GetAllBudgets(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Month == month {
			result = append(result, b)
		}
	}
	return result, nil
}
