package utils

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// demoMonths - за сколько последних месяцев раскидываются даты демо-транзакций
const demoMonths = 6

// GenerateTestTransactions добавляет n случайных транзакций по существующим категориям.
// Категории должны быть уже заполнены.
func GenerateTestTransactions(ctx context.Context, repo *repository.Repository, n int) (int, error) {
	incomeCats, err := repo.GetCategoriesByType(ctx, models.TypeIncome)
	if err != nil {
		return 0, err
	}
	expenseCats, err := repo.GetCategoriesByType(ctx, models.TypeExpense)
	if err != nil {
		return 0, err
	}
	if len(incomeCats) == 0 || len(expenseCats) == 0 {
		return 0, fmt.Errorf("нет категорий для генерации транзакций")
	}

	now := repo.Now()
	from := now.AddDate(0, -demoMonths, 0)

	for i := 0; i < n; i++ {
		tx := models.Transaction{
			Description: gofakeit.Sentence(3),
			Date:        models.DateKey(gofakeit.DateRange(from, now)),
		}

		// примерно каждая пятая транзакция - доход
		if gofakeit.Number(1, 5) == 1 {
			tx.Type = models.TypeIncome
			tx.CategoryID = incomeCats[gofakeit.Number(0, len(incomeCats)-1)].ID
			tx.Amount = int64(gofakeit.Number(500, 10000)) * 1000
		} else {
			tx.Type = models.TypeExpense
			tx.CategoryID = expenseCats[gofakeit.Number(0, len(expenseCats)-1)].ID
			tx.Amount = int64(gofakeit.Number(5, 1500)) * 1000
			tx.NeedWant = gofakeit.RandomString([]string{models.Need, models.Want})
		}

		if _, err := repo.AddTransaction(ctx, tx); err != nil {
			return i, fmt.Errorf("ошибка при добавлении транзакции: %w", err)
		}
	}
	return n, nil
}
