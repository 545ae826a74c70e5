package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Exporter сохраняет выгрузку в каталог и возвращает путь к файлу
type Exporter interface {
	WriteExport(ctx context.Context, dir string) (string, error)
}

// ScheduleExport запускает выгрузку CSV по cron-расписанию schedule.
// Ошибки выгрузки только логируются. Для пустого schedule возвращает nil, nil.
func ScheduleExport(exp Exporter, dir, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		RunExport(context.Background(), exp, dir)
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка настройки CRON-задачи для экспорта: %w", err)
	}
	c.Start()
	return c, nil
}

// RunExport выполняет одну выгрузку и пишет результат в лог
func RunExport(ctx context.Context, exp Exporter, dir string) {
	path, err := exp.WriteExport(ctx, dir)
	if err != nil {
		log.Printf("Ошибка экспорта транзакций: %v", err)
		return
	}
	log.Printf("Экспорт транзакций сохранен в %s", path)
}

// Stop останавливает расписание и ждет завершения уже запущенной выгрузки.
// Для nil ничего не делает.
func Stop(c *cron.Cron) {
	if c == nil {
		return
	}
	<-c.Stop().Done()
}
