package repository

import (
	"context"
	"sort"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// AddGoal создает цель с нулевым накоплением
func (r *Repository) AddGoal(ctx context.Context, g models.Goal) (int64, error) {
	if err := validateGoal(g); err != nil {
		return 0, err
	}
	g.ID = 0
	g.Saved = 0
	g.Completed = false
	g.CreatedAt = r.now()
	return r.store.Goals().Add(ctx, g)
}

func (r *Repository) UpdateGoal(ctx context.Context, id int64, g models.Goal) error {
	if err := validateGoal(g); err != nil {
		return err
	}
	return r.store.Goals().Put(ctx, id, g)
}

func (r *Repository) DeleteGoal(ctx context.Context, id int64) error {
	return r.store.Goals().Remove(ctx, id)
}

func (r *Repository) GetGoal(ctx context.Context, id int64) (*models.Goal, error) {
	return r.store.Goals().Get(ctx, id)
}

// GetAllGoals возвращает сначала незавершенные цели
func (r *Repository) GetAllGoals(ctx context.Context) ([]models.Goal, error) {
	goals, err := r.store.Goals().All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].Completed != goals[j].Completed {
			return !goals[i].Completed
		}
		return goals[i].ID < goals[j].ID
	})
	return goals, nil
}

// AddToGoal прибавляет взнос к накоплению цели.
// Знак суммы не проверяется. Если цели нет, возвращает nil.
func (r *Repository) AddToGoal(ctx context.Context, id int64, amount int64) (*models.Goal, error) {
	goal, err := r.GetGoal(ctx, id)
	if err != nil || goal == nil {
		return nil, err
	}
	goal.Contribute(amount)

	if err := r.store.Goals().Put(ctx, id, *goal); err != nil {
		return nil, err
	}
	return goal, nil
}
