package models

type Statistics struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	Balance      int64 `json:"balance"`
	NeedsExpense int64 `json:"needs_expense"`
	WantsExpense int64 `json:"wants_expense"`
}

type CategoryStat struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// MonthlyData - точка для графика доходов и расходов по месяцам
type MonthlyData struct {
	Label   string `json:"label"`
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

type YearlyReport struct {
	Year             int   `json:"year"`
	Income           int64 `json:"income"`
	Expense          int64 `json:"expense"`
	Balance          int64 `json:"balance"`
	Needs            int64 `json:"needs"`
	Wants            int64 `json:"wants"`
	TransactionCount int   `json:"transaction_count"`
}

type BudgetProgress struct {
	Budget
	Spent      int64   `json:"spent"`
	Percentage float64 `json:"percentage"`
	Remaining  int64   `json:"remaining"`
	IsOver     bool    `json:"is_over"`
}
