package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// AddTransaction сохраняет новую транзакцию и возвращает ее id
func (r *Repository) AddTransaction(ctx context.Context, t models.Transaction) (int64, error) {
	if err := validateTransaction(t); err != nil {
		return 0, err
	}
	t.ID = 0
	t.CreatedAt = r.now()
	return r.store.Transactions().Add(ctx, t)
}

// UpdateTransaction полностью заменяет запись, частичное обновление не поддерживается
func (r *Repository) UpdateTransaction(ctx context.Context, id int64, t models.Transaction) error {
	if err := validateTransaction(t); err != nil {
		return err
	}
	return r.store.Transactions().Put(ctx, id, t)
}

func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	return r.store.Transactions().Remove(ctx, id)
}

func (r *Repository) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return r.store.Transactions().Get(ctx, id)
}

// GetAllTransactions возвращает транзакции от новых к старым.
// При равной дате сохраняется порядок id.
func (r *Repository) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := r.store.Transactions().All(ctx)
	if err != nil {
		return nil, err
	}
	sortTransactions(txs)
	return txs, nil
}

// GetTransactionsByType фильтрует список по типу; "all" или пустая строка - без фильтра
func (r *Repository) GetTransactionsByType(ctx context.Context, txType string) ([]models.Transaction, error) {
	if txType != "" && txType != "all" && !validType(txType) {
		return nil, fmt.Errorf("%w: неизвестный тип транзакции %q", ErrInvalid, txType)
	}
	txs, err := r.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if txType == "" || txType == "all" {
		return txs, nil
	}

	filtered := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Type == txType {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func sortTransactions(txs []models.Transaction) {
	// транзакции с неразборчивой датой уходят в конец
	sort.Slice(txs, func(i, j int) bool {
		di, _ := models.ParseDate(txs[i].Date)
		dj, _ := models.ParseDate(txs[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return txs[i].ID < txs[j].ID
	})
}
