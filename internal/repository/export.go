package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var csvHeader = []string{"Tanggal", "Tipe", "Kategori", "Keterangan", "Jumlah", "Butuh/Ingin"}

// ExportError - ошибка формирования или сохранения CSV
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("ошибка экспорта: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportFileName возвращает имя файла вида keuangan_2026-10-15.csv
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("keuangan_%s.csv", models.DateKey(now))
}

func typeLabel(t models.Transaction) string {
	if t.Type == models.TypeIncome {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

func needWantLabel(t models.Transaction) string {
	if t.Type != models.TypeExpense {
		return "-"
	}
	if t.NeedWant == models.Need {
		return "Butuh"
	}
	return "Ingin"
}

// ExportToCSV выгружает все транзакции от новых к старым.
// Поля с запятой, кавычкой или переводом строки берутся в кавычки.
func (r *Repository) ExportToCSV(ctx context.Context) (string, error) {
	txs, err := r.GetAllTransactions(ctx)
	if err != nil {
		return "", &ExportError{Err: err}
	}
	categories, err := r.categoryIndex(ctx)
	if err != nil {
		return "", &ExportError{Err: err}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", &ExportError{Err: err}
	}
	for _, t := range txs {
		row := []string{
			t.Date,
			typeLabel(t),
			resolveCategory(categories, t.CategoryID).Name,
			t.Description,
			strconv.FormatInt(t.Amount, 10),
			needWantLabel(t),
		}
		if err := w.Write(row); err != nil {
			return "", &ExportError{Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", &ExportError{Err: err}
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// WriteExport сохраняет CSV в каталог dir и возвращает путь к файлу
func (r *Repository) WriteExport(ctx context.Context, dir string) (string, error) {
	data, err := r.ExportToCSV(ctx)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ExportError{Err: err}
	}

	path := filepath.Join(dir, ExportFileName(r.now()))
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", &ExportError{Err: err}
	}
	return path, nil
}
