package repository

import (
	"context"
	"sort"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

func (r *Repository) AddPlan(ctx context.Context, p models.Plan) (int64, error) {
	if err := validatePlan(p); err != nil {
		return 0, err
	}
	p.ID = 0
	p.Completed = false
	p.CreatedAt = r.now()
	return r.store.Plans().Add(ctx, p)
}

func (r *Repository) UpdatePlan(ctx context.Context, id int64, p models.Plan) error {
	if err := validatePlan(p); err != nil {
		return err
	}
	return r.store.Plans().Put(ctx, id, p)
}

func (r *Repository) DeletePlan(ctx context.Context, id int64) error {
	return r.store.Plans().Remove(ctx, id)
}

func (r *Repository) GetPlan(ctx context.Context, id int64) (*models.Plan, error) {
	return r.store.Plans().Get(ctx, id)
}

// GetAllPlans возвращает планы по убыванию приоритета
func (r *Repository) GetAllPlans(ctx context.Context) ([]models.Plan, error) {
	plans, err := r.store.Plans().All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].Priority != plans[j].Priority {
			return plans[i].Priority > plans[j].Priority
		}
		return plans[i].ID < plans[j].ID
	})
	return plans, nil
}
