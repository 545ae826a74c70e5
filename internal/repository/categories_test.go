package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

func TestSeedCategoriesOnce(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	added, err := repo.SeedCategories(ctx)
	if err != nil {
		t.Fatalf("ошибка повторного заполнения: %v", err)
	}
	if added != 0 {
		t.Errorf("повторное заполнение добавило %d категорий", added)
	}

	all, _ := repo.GetAllCategories(ctx)
	if len(all) != len(repository.DefaultCategories) {
		t.Errorf("ожидали %d категорий, получили %d", len(repository.DefaultCategories), len(all))
	}
	for i, c := range all {
		if c.ID != int64(i+1) || c.Name != repository.DefaultCategories[i].Name {
			t.Errorf("категория %d заполнена неверно: %+v", i, c)
		}
	}
}

func TestSeedCategoriesSkipsNonEmpty(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	if _, err := store.Categories().Add(ctx, models.Category{Name: "Custom", Type: models.TypeExpense}); err != nil {
		t.Fatalf("ошибка записи категории: %v", err)
	}
	repo := repository.New(store)

	added, err := repo.SeedCategories(ctx)
	if err != nil || added != 0 {
		t.Errorf("при непустой коллекции ожидали 0 добавленных, получили %d, %v", added, err)
	}
}

func TestGetCategoriesByType(t *testing.T) {
	repo, _ := newTestRepository(t)

	incomeCats, err := repo.GetCategoriesByType(context.Background(), models.TypeIncome)
	if err != nil {
		t.Fatalf("ошибка получения категорий: %v", err)
	}
	if len(incomeCats) != 4 {
		t.Errorf("ожидали 4 категории доходов, получили %d", len(incomeCats))
	}
	for _, c := range incomeCats {
		if c.Type != models.TypeIncome {
			t.Errorf("в выборку попала категория другого типа: %+v", c)
		}
	}
}

func TestGetCategoryUsesCache(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	cache, err := repository.NewCategoryCache()
	if err != nil {
		t.Fatalf("ошибка создания кэша: %v", err)
	}
	defer cache.Close()

	repo := repository.New(store,
		repository.WithCategoryCache(cache),
		repository.WithClock(func() time.Time { return fixedNow }))
	if _, err := repo.SeedCategories(ctx); err != nil {
		t.Fatalf("ошибка заполнения категорий: %v", err)
	}

	first, err := repo.GetCategory(ctx, 5)
	if err != nil || first == nil || first.Name != "Makanan" {
		t.Fatalf("ошибка получения категории: %+v, %v", first, err)
	}
	cache.Wait()

	if err := store.Categories().Remove(ctx, 5); err != nil {
		t.Fatalf("ошибка удаления категории: %v", err)
	}
	cached, err := repo.GetCategory(ctx, 5)
	if err != nil || cached == nil || *cached != *first {
		t.Errorf("ожидали категорию из кэша, получили %+v, %v", cached, err)
	}

	missing, err := repo.GetCategory(ctx, 404)
	if err != nil || missing != nil {
		t.Errorf("для отсутствующей категории ожидали nil, nil; получили %+v, %v", missing, err)
	}
}
