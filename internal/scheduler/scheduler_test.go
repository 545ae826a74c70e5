package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker/internal/scheduler"
)

type fakeExporter struct {
	mu    sync.Mutex
	calls []string
	err   error
	done  chan struct{}
}

func (f *fakeExporter) WriteExport(_ context.Context, dir string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, dir)
	f.mu.Unlock()
	if f.done != nil {
		select {
		case f.done <- struct{}{}:
		default:
		}
	}
	return dir + "/keuangan.csv", f.err
}

func TestScheduleExportDisabled(t *testing.T) {
	c, err := scheduler.ScheduleExport(&fakeExporter{}, "exports", "")
	if err != nil || c != nil {
		t.Errorf("пустое расписание должно отключать экспорт: %v, %v", c, err)
	}
}

func TestScheduleExportBadSpec(t *testing.T) {
	if _, err := scheduler.ScheduleExport(&fakeExporter{}, "exports", "каждый день"); err == nil {
		t.Error("ожидали ошибку для некорректного расписания")
	}
}

func TestScheduleExportRuns(t *testing.T) {
	exp := &fakeExporter{done: make(chan struct{}, 1)}

	c, err := scheduler.ScheduleExport(exp, "exports", "@every 1s")
	if err != nil {
		t.Fatalf("ошибка запуска расписания: %v", err)
	}
	defer c.Stop()

	select {
	case <-exp.done:
	case <-time.After(5 * time.Second):
		t.Fatal("экспорт не запустился по расписанию")
	}

	exp.mu.Lock()
	defer exp.mu.Unlock()
	if exp.calls[0] != "exports" {
		t.Errorf("экспорт вызван с неверным каталогом: %v", exp.calls)
	}
}

func TestRunExportSurvivesError(t *testing.T) {
	exp := &fakeExporter{err: errors.New("диск заполнен")}

	scheduler.RunExport(context.Background(), exp, "exports")

	if len(exp.calls) != 1 {
		t.Errorf("ожидали один вызов экспорта, получили %d", len(exp.calls))
	}
}

// slowExporter сигналит о старте и держит выгрузку, пока не закроют release
type slowExporter struct {
	started  chan struct{}
	release  chan struct{}
	finished atomic.Bool
}

func (s *slowExporter) WriteExport(_ context.Context, dir string) (string, error) {
	select {
	case s.started <- struct{}{}:
	default:
	}
	<-s.release
	s.finished.Store(true)
	return dir, nil
}

func TestStopWaitsForRunningExport(t *testing.T) {
	exp := &slowExporter{started: make(chan struct{}, 1), release: make(chan struct{})}

	c, err := scheduler.ScheduleExport(exp, "exports", "@every 1s")
	if err != nil {
		t.Fatalf("ошибка запуска расписания: %v", err)
	}

	select {
	case <-exp.started:
	case <-time.After(5 * time.Second):
		t.Fatal("экспорт не запустился по расписанию")
	}

	stopped := make(chan struct{})
	go func() {
		scheduler.Stop(c)
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop вернулся до завершения выгрузки")
	case <-time.After(100 * time.Millisecond):
	}

	close(exp.release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop не вернулся после завершения выгрузки")
	}
	if !exp.finished.Load() {
		t.Error("выгрузка не завершилась к моменту возврата Stop")
	}
}

func TestStopNil(t *testing.T) {
	scheduler.Stop(nil)
}
