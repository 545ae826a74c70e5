package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// CreateReminderHandler создает напоминание о платеже
func CreateReminderHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reminder models.Reminder
		if !bindJSON(c, &reminder) {
			return
		}

		id, err := repo.AddReminder(c.Request.Context(), reminder)
		if err != nil {
			respondError(c, err, "Не удалось создать напоминание")
			return
		}

		created, err := repo.GetReminder(c.Request.Context(), id)
		respondCreated(c, id, created, err, "Не удалось получить созданное напоминание")
	}
}

// GetRemindersHandler возвращает напоминания по сроку.
// С ?upcoming=N - только N ближайших неоплаченных, 0 - все неоплаченные.
func GetRemindersHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			reminders []models.Reminder
			err       error
		)
		if raw, ok := c.GetQuery("upcoming"); ok {
			limit, convErr := strconv.Atoi(raw)
			if convErr != nil || limit < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное значение upcoming"})
				return
			}
			reminders, err = repo.GetUpcomingReminders(c.Request.Context(), limit)
		} else {
			reminders, err = repo.GetAllReminders(c.Request.Context())
		}
		if err != nil {
			respondError(c, err, "Не удалось получить напоминания")
			return
		}
		c.JSON(http.StatusOK, reminders)
	}
}

func GetReminderHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID напоминания")
		if !ok {
			return
		}

		reminder, err := repo.GetReminder(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось получить напоминание")
			return
		}
		if reminder == nil {
			notFound(c, "Напоминание не найдено")
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func UpdateReminderHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID напоминания")
		if !ok {
			return
		}
		var reminder models.Reminder
		if !bindJSON(c, &reminder) {
			return
		}

		existing, err := repo.GetReminder(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось обновить напоминание")
			return
		}
		if existing == nil {
			notFound(c, "Напоминание не найдено")
			return
		}

		if err := repo.UpdateReminder(c.Request.Context(), id, reminder); err != nil {
			respondError(c, err, "Не удалось обновить напоминание")
			return
		}
		c.JSON(http.StatusOK, reminder.WithID(id))
	}
}

func DeleteReminderHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID напоминания")
		if !ok {
			return
		}

		if err := repo.DeleteReminder(c.Request.Context(), id); err != nil {
			respondError(c, err, "Не удалось удалить напоминание")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Напоминание успешно удалено"})
	}
}

// MarkReminderPaidHandler отмечает напоминание оплаченным
func MarkReminderPaidHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID напоминания")
		if !ok {
			return
		}

		reminder, err := repo.MarkReminderPaid(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось отметить оплату")
			return
		}
		if reminder == nil {
			notFound(c, "Напоминание не найдено")
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}
