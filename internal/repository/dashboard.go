package repository

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// monthsInChart - сколько месяцев попадает в график GetMonthlyData
const monthsInChart = 6

var shortMonthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

func inMonth(t models.Transaction, year int, month time.Month) bool {
	d, ok := models.ParseDate(t.Date)
	return ok && d.Year() == year && d.Month() == month
}

func inYear(t models.Transaction, year int) bool {
	d, ok := models.ParseDate(t.Date)
	return ok && d.Year() == year
}

// percentOf считает part/whole*100, для whole <= 0 возвращает 0
func percentOf(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(whole)).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

func (r *Repository) currentMonthTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := r.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	now := r.now()

	current := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if inMonth(t, now.Year(), now.Month()) {
			current = append(current, t)
		}
	}
	return current, nil
}

// GetStatistics - доходы и расходы текущего месяца
func (r *Repository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	current, err := r.currentMonthTransactions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.Statistics{}
	for _, t := range current {
		switch t.Type {
		case models.TypeIncome:
			stats.TotalIncome += t.Amount
		case models.TypeExpense:
			stats.TotalExpense += t.Amount
			switch t.NeedWant {
			case models.Need:
				stats.NeedsExpense += t.Amount
			case models.Want:
				stats.WantsExpense += t.Amount
			}
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpense
	return stats, nil
}

// GetCategoryStatistics группирует расходы текущего месяца по категориям.
// Результат отсортирован по убыванию суммы, при равенстве - по id категории.
func (r *Repository) GetCategoryStatistics(ctx context.Context) ([]models.CategoryStat, error) {
	current, err := r.currentMonthTransactions(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := r.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[int64]*models.CategoryStat)
	var total int64
	for _, t := range current {
		if !t.IsExpense() {
			continue
		}
		stat, ok := groups[t.CategoryID]
		if !ok {
			c := resolveCategory(categories, t.CategoryID)
			stat = &models.CategoryStat{ID: t.CategoryID, Name: c.Name, Icon: c.Icon, Color: c.Color}
			groups[t.CategoryID] = stat
		}
		stat.Amount += t.Amount
		total += t.Amount
	}

	result := make([]models.CategoryStat, 0, len(groups))
	for _, stat := range groups {
		stat.Percentage = percentOf(stat.Amount, total)
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// GetMonthlyData возвращает ровно шесть месяцев, от старого к текущему
func (r *Repository) GetMonthlyData(ctx context.Context) ([]models.MonthlyData, error) {
	txs, err := r.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	now := r.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	months := make([]models.MonthlyData, 0, monthsInChart)
	for i := monthsInChart - 1; i >= 0; i-- {
		date := firstOfMonth.AddDate(0, -i, 0)
		point := models.MonthlyData{
			Label: shortMonthNames[date.Month()-1],
			Month: models.MonthKey(date),
		}
		for _, t := range txs {
			if !inMonth(t, date.Year(), date.Month()) {
				continue
			}
			switch t.Type {
			case models.TypeIncome:
				point.Income += t.Amount
			case models.TypeExpense:
				point.Expense += t.Amount
			}
		}
		months = append(months, point)
	}
	return months, nil
}

// GetYearlyReport - итоги текущего календарного года
func (r *Repository) GetYearlyReport(ctx context.Context) (*models.YearlyReport, error) {
	txs, err := r.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	year := r.now().Year()

	report := &models.YearlyReport{Year: year}
	for _, t := range txs {
		if !inYear(t, year) {
			continue
		}
		report.TransactionCount++
		switch t.Type {
		case models.TypeIncome:
			report.Income += t.Amount
		case models.TypeExpense:
			report.Expense += t.Amount
			switch t.NeedWant {
			case models.Need:
				report.Needs += t.Amount
			case models.Want:
				report.Wants += t.Amount
			}
		}
	}
	report.Balance = report.Income - report.Expense
	return report, nil
}

// GetBudgetProgress считает исполнение бюджетов текущего месяца
func (r *Repository) GetBudgetProgress(ctx context.Context) ([]models.BudgetProgress, error) {
	budgets, err := r.GetBudgetsByMonth(ctx, models.MonthKey(r.now()))
	if err != nil {
		return nil, err
	}
	stats, err := r.GetCategoryStatistics(ctx)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[int64]int64, len(stats))
	for _, s := range stats {
		spentByCategory[s.ID] = s.Amount
	}

	progress := make([]models.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.CategoryID]
		progress = append(progress, models.BudgetProgress{
			Budget:     b,
			Spent:      spent,
			Percentage: percentOf(spent, b.Limit),
			Remaining:  b.Limit - spent,
			IsOver:     spent > b.Limit,
		})
	}
	return progress, nil
}
