package repository

import (
	"context"
	"sort"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

func (r *Repository) AddReminder(ctx context.Context, rem models.Reminder) (int64, error) {
	if err := validateReminder(rem); err != nil {
		return 0, err
	}
	rem.ID = 0
	rem.IsPaid = false
	rem.PaidDate = nil
	rem.CreatedAt = r.now()
	return r.store.Reminders().Add(ctx, rem)
}

func (r *Repository) UpdateReminder(ctx context.Context, id int64, rem models.Reminder) error {
	if err := validateReminder(rem); err != nil {
		return err
	}
	return r.store.Reminders().Put(ctx, id, rem)
}

func (r *Repository) DeleteReminder(ctx context.Context, id int64) error {
	return r.store.Reminders().Remove(ctx, id)
}

func (r *Repository) GetReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	return r.store.Reminders().Get(ctx, id)
}

// GetAllReminders возвращает напоминания по возрастанию срока
func (r *Repository) GetAllReminders(ctx context.Context) ([]models.Reminder, error) {
	reminders, err := r.store.Reminders().All(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(reminders, func(i, j int) bool {
		di, okI := models.ParseDate(reminders[i].DueDate)
		dj, okJ := models.ParseDate(reminders[j].DueDate)
		if okI != okJ {
			// неразборчивый срок - в конец списка
			return okI
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return reminders[i].ID < reminders[j].ID
	})
	return reminders, nil
}

// GetUpcomingReminders - ближайшие неоплаченные напоминания со сроком не раньше сегодняшнего
func (r *Repository) GetUpcomingReminders(ctx context.Context, limit int) ([]models.Reminder, error) {
	reminders, err := r.GetAllReminders(ctx)
	if err != nil {
		return nil, err
	}
	today := r.today()

	upcoming := make([]models.Reminder, 0)
	for _, rem := range reminders {
		if limit > 0 && len(upcoming) == limit {
			break
		}
		if !rem.IsPaid && rem.DueDate >= today {
			upcoming = append(upcoming, rem)
		}
	}
	return upcoming, nil
}

// MarkReminderPaid отмечает напоминание оплаченным.
// Для повторяющихся напоминаний новое не создается.
func (r *Repository) MarkReminderPaid(ctx context.Context, id int64) (*models.Reminder, error) {
	rem, err := r.GetReminder(ctx, id)
	if err != nil || rem == nil {
		return nil, err
	}
	paid := r.now()
	rem.IsPaid = true
	rem.PaidDate = &paid

	if err := r.store.Reminders().Put(ctx, id, *rem); err != nil {
		return nil, err
	}
	return rem, nil
}
