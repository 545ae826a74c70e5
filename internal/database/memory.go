package database

import (
	"context"
	"sort"
	"sync"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// MemoryStore держит все коллекции в памяти процесса.
// Используется в тестах и для запуска без внешней БД.
type MemoryStore struct {
	life    *lifecycle
	mu      sync.Mutex
	version int64

	transactions *memCollection[models.Transaction]
	plans        *memCollection[models.Plan]
	categories   *memCollection[models.Category]
	budgets      *memCollection[models.Budget]
	goals        *memCollection[models.Goal]
	reminders    *memCollection[models.Reminder]
}

func NewMemoryStore() *MemoryStore {
	life := &lifecycle{}
	return &MemoryStore{
		life:         life,
		transactions: newMemCollection[models.Transaction](CollectionTransactions, life),
		plans:        newMemCollection[models.Plan](CollectionPlans, life),
		categories:   newMemCollection[models.Category](CollectionCategories, life),
		budgets:      newMemCollection[models.Budget](CollectionBudgets, life),
		goals:        newMemCollection[models.Goal](CollectionGoals, life),
		reminders:    newMemCollection[models.Reminder](CollectionReminders, life),
	}
}

func (s *MemoryStore) Initialize(ctx context.Context) error {
	if err := s.life.check(ctx, "initialize", ""); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version < SchemaVersion {
		s.version = SchemaVersion
	}
	return nil
}

func (s *MemoryStore) SchemaVersion(ctx context.Context) (int64, error) {
	if err := s.life.check(ctx, "version", ""); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version, nil
}

func (s *MemoryStore) Transactions() Collection[models.Transaction] { return s.transactions }
func (s *MemoryStore) Plans() Collection[models.Plan]               { return s.plans }
func (s *MemoryStore) Categories() Collection[models.Category]      { return s.categories }
func (s *MemoryStore) Budgets() Collection[models.Budget]           { return s.budgets }
func (s *MemoryStore) Goals() Collection[models.Goal]               { return s.goals }
func (s *MemoryStore) Reminders() Collection[models.Reminder]       { return s.reminders }

func (s *MemoryStore) Close() error {
	s.life.closed.Store(true)
	return nil
}

type memCollection[T record[T]] struct {
	name   string
	life   *lifecycle
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
}

func newMemCollection[T record[T]](name string, life *lifecycle) *memCollection[T] {
	return &memCollection[T]{
		name: name,
		life: life,
		rows: make(map[int64]T),
	}
}

func (c *memCollection[T]) Add(ctx context.Context, rec T) (int64, error) {
	if err := c.life.check(ctx, "add", c.name); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.rows[c.nextID] = rec.WithID(c.nextID)
	return c.nextID, nil
}

func (c *memCollection[T]) Put(ctx context.Context, id int64, rec T) error {
	if err := c.life.check(ctx, "put", c.name); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[id] = rec.WithID(id)
	// генератор ключей не должен выдать уже занятый id
	if id > c.nextID {
		c.nextID = id
	}
	return nil
}

func (c *memCollection[T]) Remove(ctx context.Context, id int64) error {
	if err := c.life.check(ctx, "remove", c.name); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rows, id)
	return nil
}

func (c *memCollection[T]) Get(ctx context.Context, id int64) (*T, error) {
	if err := c.life.check(ctx, "get", c.name); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.rows[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (c *memCollection[T]) All(ctx context.Context) ([]T, error) {
	if err := c.life.check(ctx, "getAll", c.name); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int64, 0, len(c.rows))
	for id := range c.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, c.rows[id])
	}
	return result, nil
}
