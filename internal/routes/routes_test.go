package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/internal/routes"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*gin.Engine, *database.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	if err := store.Initialize(context.Background()); err != nil {
		t.Fatalf("ошибка инициализации хранилища: %v", err)
	}
	repo := repository.New(store, repository.WithClock(func() time.Time { return fixedNow }))
	if _, err := repo.SeedCategories(context.Background()); err != nil {
		t.Fatalf("ошибка заполнения категорий: %v", err)
	}
	return routes.SetupRouter(repo, []string{"http://localhost:3000"}), store
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("ошибка разбора ответа %q: %v", w.Body.String(), err)
	}
	return v
}

const expenseBody = `{"type":"expense","amount":50000,"description":"Makan siang","category_id":5,"date":"2026-10-15","need_want":"need"}`

func TestCreateAndGetTransaction(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/transactions", expenseBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("ожидали 201, получили %d: %s", w.Code, w.Body)
	}
	created := decode[models.Transaction](t, w)
	if created.ID != 1 || created.Amount != 50000 || !created.CreatedAt.Equal(fixedNow) {
		t.Errorf("неверная созданная транзакция: %+v", created)
	}

	w = doRequest(r, http.MethodGet, "/api/transactions/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", w.Code)
	}
	if got := decode[models.Transaction](t, w); got != created {
		t.Errorf("полученная транзакция отличается: %+v != %+v", got, created)
	}
}

func TestTransactionErrors(t *testing.T) {
	r, _ := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"невалидная транзакция", http.MethodPost, "/api/transactions", `{"type":"expense","amount":-1,"date":"2026-10-15","need_want":"need"}`, http.StatusBadRequest},
		{"битый JSON", http.MethodPost, "/api/transactions", `{"type":`, http.StatusBadRequest},
		{"нечисловой id", http.MethodGet, "/api/transactions/abc", "", http.StatusBadRequest},
		{"отсутствующая транзакция", http.MethodGet, "/api/transactions/999", "", http.StatusNotFound},
		{"обновление отсутствующей", http.MethodPut, "/api/transactions/999", expenseBody, http.StatusNotFound},
		{"неизвестный тип в фильтре", http.MethodGet, "/api/transactions?type=gift", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, tc.method, tc.path, tc.body)
			if w.Code != tc.code {
				t.Errorf("ожидали %d, получили %d: %s", tc.code, w.Code, w.Body)
			}
		})
	}
}

func TestUpdateAndDeleteTransaction(t *testing.T) {
	r, _ := newTestServer(t)
	doRequest(r, http.MethodPost, "/api/transactions", expenseBody)

	w := doRequest(r, http.MethodPut, "/api/transactions/1",
		`{"type":"income","amount":70000,"description":"Bonus","category_id":2,"date":"2026-10-14"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d: %s", w.Code, w.Body)
	}

	w = doRequest(r, http.MethodGet, "/api/transactions?type=income", "")
	incomes := decode[[]models.Transaction](t, w)
	if len(incomes) != 1 || incomes[0].Amount != 70000 {
		t.Errorf("обновление не применилось: %+v", incomes)
	}

	w = doRequest(r, http.MethodDelete, "/api/transactions/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", w.Code)
	}
	w = doRequest(r, http.MethodGet, "/api/transactions/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("после удаления ожидали 404, получили %d", w.Code)
	}
}

func TestGoalContribution(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/goals", `{"name":"Liburan","target":1000000,"icon":"🏖️"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("ожидали 201, получили %d: %s", w.Code, w.Body)
	}

	doRequest(r, http.MethodPost, "/api/goals/1/contributions", `{"amount":400000}`)
	w = doRequest(r, http.MethodPost, "/api/goals/1/contributions", `{"amount":600000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d: %s", w.Code, w.Body)
	}
	goal := decode[models.Goal](t, w)
	if goal.Saved != 1000000 || !goal.Completed {
		t.Errorf("цель должна быть выполнена: %+v", goal)
	}

	w = doRequest(r, http.MethodPost, "/api/goals/7/contributions", `{"amount":1}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("для отсутствующей цели ожидали 404, получили %d", w.Code)
	}
}

func TestReminders(t *testing.T) {
	r, _ := newTestServer(t)

	doRequest(r, http.MethodPost, "/api/reminders", `{"name":"Listrik","amount":300000,"due_date":"2026-10-20","recurring":true}`)
	doRequest(r, http.MethodPost, "/api/reminders", `{"name":"Air","amount":100000,"due_date":"2026-10-01"}`)

	w := doRequest(r, http.MethodPost, "/api/reminders/1/paid", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d: %s", w.Code, w.Body)
	}
	if paid := decode[models.Reminder](t, w); !paid.IsPaid || paid.PaidDate == nil {
		t.Errorf("напоминание не оплачено: %+v", paid)
	}

	w = doRequest(r, http.MethodGet, "/api/reminders?upcoming=5", "")
	if upcoming := decode[[]models.Reminder](t, w); len(upcoming) != 0 {
		t.Errorf("ожидали пустой список ближайших, получили %+v", upcoming)
	}

	w = doRequest(r, http.MethodGet, "/api/reminders", "")
	if all := decode[[]models.Reminder](t, w); len(all) != 2 || all[0].Name != "Air" {
		t.Errorf("неверный список напоминаний: %+v", all)
	}

	if w := doRequest(r, http.MethodGet, "/api/reminders?upcoming=-1", ""); w.Code != http.StatusBadRequest {
		t.Errorf("ожидали 400 для отрицательного лимита, получили %d", w.Code)
	}
}

func TestBudgetProgressRoute(t *testing.T) {
	r, _ := newTestServer(t)

	doRequest(r, http.MethodPost, "/api/budgets", `{"category_id":5,"limit":200000,"month":"2026-10"}`)
	doRequest(r, http.MethodPost, "/api/transactions", `{"type":"expense","amount":250000,"category_id":5,"date":"2026-10-02","need_want":"need"}`)

	w := doRequest(r, http.MethodGet, "/api/budgets/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d: %s", w.Code, w.Body)
	}
	progress := decode[[]models.BudgetProgress](t, w)
	if len(progress) != 1 || progress[0].Percentage != 125 || !progress[0].IsOver {
		t.Errorf("неверный прогресс бюджета: %+v", progress)
	}
}

func TestExportRoute(t *testing.T) {
	r, _ := newTestServer(t)
	doRequest(r, http.MethodPost, "/api/transactions", expenseBody)

	w := doRequest(r, http.MethodGet, "/api/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=keuangan_2026-10-15.csv" {
		t.Errorf("неверный Content-Disposition: %s", got)
	}
	lines := strings.Split(w.Body.String(), "\n")
	if len(lines) != 2 || lines[1] != "2026-10-15,Pengeluaran,Makanan,Makan siang,50000,Butuh" {
		t.Errorf("неверное содержимое CSV: %q", w.Body.String())
	}
}

func TestClosedStoreResponses(t *testing.T) {
	r, store := newTestServer(t)
	store.Close()

	w := doRequest(r, http.MethodGet, "/api/export", "")
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "Gagal mengexport data") {
		t.Errorf("ожидали 500 с сообщением об экспорте, получили %d: %s", w.Code, w.Body)
	}

	w = doRequest(r, http.MethodGet, "/api/stats", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("ожидали 500, получили %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "хранилище закрыто") {
		t.Errorf("детали ошибки хранилища не должны уходить клиенту: %s", w.Body)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("разрешенный origin не прошел: %d %v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" || w.Code != http.StatusForbidden {
		t.Errorf("чужой origin получил доступ: %d %s", w.Code, got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/stats", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("ожидали сгенерированный X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("ожидали переданный X-Request-ID, получили %s", got)
	}
}

// vanishingGoals теряет запись сразу после добавления
type vanishingGoals struct {
	database.Collection[models.Goal]
}

func (vanishingGoals) Get(context.Context, int64) (*models.Goal, error) {
	return nil, nil
}

type vanishingStore struct {
	*database.MemoryStore
}

func (s vanishingStore) Goals() database.Collection[models.Goal] {
	return vanishingGoals{s.MemoryStore.Goals()}
}

func TestCreateMissingAfterAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	repo := repository.New(vanishingStore{database.NewMemoryStore()})
	r := routes.SetupRouter(repo, nil)

	w := doRequest(r, http.MethodPost, "/api/goals", `{"name":"Liburan","target":1000}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("ожидали 500, получили %d: %s", w.Code, w.Body)
	}
	if !strings.Contains(logs.String(), "запись с ID 1 не найдена сразу после создания") {
		t.Errorf("в логе нет причины ошибки: %q", logs.String())
	}
	if strings.Contains(logs.String(), "<nil>") {
		t.Errorf("в лог попала пустая ошибка: %q", logs.String())
	}
}
