package database

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

const (
	// StoreName и SchemaVersion - имя и версия локального хранилища
	StoreName     = "FinanceDB"
	SchemaVersion = 2
)

const (
	CollectionTransactions = "transactions"
	CollectionPlans        = "plans"
	CollectionCategories   = "categories"
	CollectionBudgets      = "budgets"
	CollectionGoals        = "goals"
	CollectionReminders    = "reminders"
)

// Collections перечисляет коллекции в порядке их появления в схеме
var Collections = []string{
	CollectionTransactions,
	CollectionPlans,
	CollectionCategories,
	CollectionBudgets,
	CollectionGoals,
	CollectionReminders,
}

var (
	ErrClosed   = errors.New("хранилище закрыто")
	ErrConflict = errors.New("запись с таким id уже существует")
)

// StoreError оборачивает любую ошибку хранилища
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("ошибка хранилища (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ошибка хранилища (%s %s): %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op, collection string, err error) error {
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// Collection - набор записей одного типа с автоинкрементным ключом.
// Get возвращает nil без ошибки, если записи нет.
type Collection[T any] interface {
	Add(ctx context.Context, record T) (int64, error)
	Put(ctx context.Context, id int64, record T) error
	Remove(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*T, error)
	All(ctx context.Context) ([]T, error)
}

type Store interface {
	Initialize(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int64, error)

	Transactions() Collection[models.Transaction]
	Plans() Collection[models.Plan]
	Categories() Collection[models.Category]
	Budgets() Collection[models.Budget]
	Goals() Collection[models.Goal]
	Reminders() Collection[models.Reminder]

	Close() error
}

// record - запись, которой хранилище может присвоить идентификатор
type record[T any] interface {
	WithID(id int64) T
}

// lifecycle общая для всех бэкендов проверка перед операцией
type lifecycle struct {
	closed atomic.Bool
}

func (l *lifecycle) check(ctx context.Context, op, collection string) error {
	if l.closed.Load() {
		return storeErr(op, collection, ErrClosed)
	}
	if err := ctx.Err(); err != nil {
		return storeErr(op, collection, err)
	}
	return nil
}
