package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

func CreateBudgetHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var budget models.Budget
		if !bindJSON(c, &budget) {
			return
		}

		id, err := repo.AddBudget(c.Request.Context(), budget)
		if err != nil {
			respondError(c, err, "Ошибка при создании бюджета")
			return
		}

		created, err := repo.GetBudget(c.Request.Context(), id)
		respondCreated(c, id, created, err, "Ошибка при получении созданного бюджета")
	}
}

// GetBudgetsHandler возвращает все бюджеты или бюджеты месяца ?month=YYYY-MM
func GetBudgetsHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			budgets []models.Budget
			err     error
		)
		if month := c.Query("month"); month != "" {
			budgets, err = repo.GetBudgetsByMonth(c.Request.Context(), month)
		} else {
			budgets, err = repo.GetAllBudgets(c.Request.Context())
		}
		if err != nil {
			respondError(c, err, "Ошибка при получении бюджетов")
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

func GetBudgetHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID бюджета")
		if !ok {
			return
		}

		budget, err := repo.GetBudget(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Ошибка при получении бюджета")
			return
		}
		if budget == nil {
			notFound(c, "Бюджет не найден")
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func UpdateBudgetHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID бюджета")
		if !ok {
			return
		}
		var budget models.Budget
		if !bindJSON(c, &budget) {
			return
		}

		existing, err := repo.GetBudget(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Ошибка при обновлении бюджета")
			return
		}
		if existing == nil {
			notFound(c, "Бюджет не найден")
			return
		}

		if err := repo.UpdateBudget(c.Request.Context(), id, budget); err != nil {
			respondError(c, err, "Ошибка при обновлении бюджета")
			return
		}
		c.JSON(http.StatusOK, budget.WithID(id))
	}
}

func DeleteBudgetHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID бюджета")
		if !ok {
			return
		}

		if err := repo.DeleteBudget(c.Request.Context(), id); err != nil {
			respondError(c, err, "Ошибка при удалении бюджета")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Бюджет успешно удален"})
	}
}

// GetBudgetProgressHandler - исполнение бюджетов текущего месяца
func GetBudgetProgressHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		progress, err := repo.GetBudgetProgress(c.Request.Context())
		if err != nil {
			respondError(c, err, "Ошибка при расчете исполнения бюджетов")
			return
		}
		c.JSON(http.StatusOK, progress)
	}
}
