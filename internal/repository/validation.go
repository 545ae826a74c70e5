package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var ErrInvalid = errors.New("некорректные данные")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func validType(t string) bool {
	return t == models.TypeIncome || t == models.TypeExpense
}

func validNeedWant(nw string) bool {
	return nw == models.Need || nw == models.Want
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func validMonth(s string) bool {
	_, err := time.Parse(models.MonthLayout, s)
	return err == nil
}

func validateTransaction(t models.Transaction) error {
	if !validType(t.Type) {
		return invalid("неизвестный тип транзакции %q", t.Type)
	}
	if t.Amount <= 0 {
		return invalid("сумма транзакции должна быть положительной")
	}
	if !validDate(t.Date) {
		return invalid("некорректная дата транзакции %q", t.Date)
	}
	if t.Type == models.TypeExpense && !validNeedWant(t.NeedWant) {
		return invalid("для расхода нужно указать need или want, получили %q", t.NeedWant)
	}
	if t.NeedWant != "" && !validNeedWant(t.NeedWant) {
		return invalid("неизвестное значение need_want %q", t.NeedWant)
	}
	return nil
}

func validatePlan(p models.Plan) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("название плана не может быть пустым")
	}
	if p.Amount <= 0 {
		return invalid("сумма плана должна быть положительной")
	}
	if p.Priority < 1 || p.Priority > 5 {
		return invalid("приоритет должен быть от 1 до 5, получили %d", p.Priority)
	}
	if !validNeedWant(p.NeedWant) {
		return invalid("неизвестное значение need_want %q", p.NeedWant)
	}
	return nil
}

func validateBudget(b models.Budget) error {
	if b.Limit <= 0 {
		return invalid("лимит бюджета должен быть положительным")
	}
	if !validMonth(b.Month) {
		return invalid("некорректный месяц бюджета %q", b.Month)
	}
	return nil
}

func validateGoal(g models.Goal) error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("название цели не может быть пустым")
	}
	if g.Target <= 0 {
		return invalid("сумма цели должна быть положительной")
	}
	return nil
}

func validateReminder(r models.Reminder) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("название напоминания не может быть пустым")
	}
	if r.Amount <= 0 {
		return invalid("сумма напоминания должна быть положительной")
	}
	if !validDate(r.DueDate) {
		return invalid("некорректная дата напоминания %q", r.DueDate)
	}
	return nil
}
