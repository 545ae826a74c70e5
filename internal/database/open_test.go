package database_test

import (
	"context"
	"testing"

	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
)

func TestOpenMemory(t *testing.T) {
	store, err := database.Open(context.Background(), database.Options{Driver: database.DriverMemory})
	if err != nil {
		t.Fatalf("ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*database.MemoryStore); !ok {
		t.Errorf("ожидали MemoryStore, получили %T", store)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := database.Open(context.Background(), database.Options{Driver: "indexeddb"}); err == nil {
		t.Error("ожидали ошибку для неизвестного драйвера")
	}
}
