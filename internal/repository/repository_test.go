package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// fixedNow - "сейчас" для всех тестов пакета
var fixedNow = time.Date(2026, time.October, 15, 10, 30, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (*repository.Repository, *database.MemoryStore) {
	t.Helper()
	store := database.NewMemoryStore()
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("ошибка инициализации хранилища: %v", err)
	}
	repo := repository.New(store, repository.WithClock(func() time.Time { return fixedNow }))
	if _, err := repo.SeedCategories(context.Background()); err != nil {
		t.Fatalf("ошибка заполнения категорий: %v", err)
	}
	return repo, store
}

// categoryID ищет id категории по имени и типу среди засеянных
func categoryID(t *testing.T, repo *repository.Repository, name, catType string) int64 {
	t.Helper()
	cats, err := repo.GetCategoriesByType(context.Background(), catType)
	if err != nil {
		t.Fatalf("ошибка получения категорий: %v", err)
	}
	for _, c := range cats {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("категория %s (%s) не найдена", name, catType)
	return 0
}

func mustAddTransaction(t *testing.T, repo *repository.Repository, tx models.Transaction) int64 {
	t.Helper()
	id, err := repo.AddTransaction(context.Background(), tx)
	if err != nil {
		t.Fatalf("ошибка добавления транзакции %+v: %v", tx, err)
	}
	return id
}

func expense(amount int64, categoryID int64, date, needWant string) models.Transaction {
	return models.Transaction{
		Type:        models.TypeExpense,
		Amount:      amount,
		Description: "pengeluaran",
		CategoryID:  categoryID,
		Date:        date,
		NeedWant:    needWant,
	}
}

func income(amount int64, categoryID int64, date string) models.Transaction {
	return models.Transaction{
		Type:        models.TypeIncome,
		Amount:      amount,
		Description: "pemasukan",
		CategoryID:  categoryID,
		Date:        date,
		NeedWant:    models.Need,
	}
}
