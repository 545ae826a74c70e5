package models_test

import (
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want string
	}{
		{"2026-10-15", true, "2026-10-15"},
		{"2026-10-15T23:10:00Z", true, "2026-10-15"},
		{"15.10.2026", false, ""},
		{"", false, ""},
	}
	for _, tc := range cases {
		d, ok := models.ParseDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseDate(%q): ok=%v, ожидали %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && models.DateKey(d) != tc.want {
			t.Errorf("ParseDate(%q) = %s, ожидали %s", tc.in, models.DateKey(d), tc.want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	if got := models.MonthKey(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)); got != "2026-01" {
		t.Errorf("неверный ключ месяца: %s", got)
	}
}

func TestGoalContribute(t *testing.T) {
	g := models.Goal{Target: 1000}

	g.Contribute(400)
	if g.Saved != 400 || g.Completed || g.Remaining() != 600 {
		t.Errorf("после первого взноса: %+v, осталось %d", g, g.Remaining())
	}

	g.Contribute(700)
	if g.Saved != 1100 || !g.Completed || g.Remaining() != 0 {
		t.Errorf("после второго взноса: %+v, осталось %d", g, g.Remaining())
	}

	g.Contribute(-500)
	if g.Saved != 600 || !g.Completed {
		t.Errorf("отрицательный взнос не должен сбрасывать цель: %+v", g)
	}
}

func TestTransactionIsExpense(t *testing.T) {
	if !(models.Transaction{Type: models.TypeExpense}).IsExpense() {
		t.Error("расход не распознан")
	}
	if (models.Transaction{Type: models.TypeIncome}).IsExpense() {
		t.Error("доход распознан как расход")
	}
}
