package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// CreateGoalHandler создает новую цель
func CreateGoalHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var goal models.Goal
		if !bindJSON(c, &goal) {
			return
		}

		id, err := repo.AddGoal(c.Request.Context(), goal)
		if err != nil {
			respondError(c, err, "Не удалось создать цель")
			return
		}

		created, err := repo.GetGoal(c.Request.Context(), id)
		respondCreated(c, id, created, err, "Не удалось получить созданную цель")
	}
}

// GetGoalHandler извлекает цель по ID
func GetGoalHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID цели")
		if !ok {
			return
		}

		goal, err := repo.GetGoal(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось получить цель")
			return
		}
		if goal == nil {
			notFound(c, "Цель не найдена")
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

// GetAllGoalsHandler извлекает все цели, незавершенные первыми
func GetAllGoalsHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := repo.GetAllGoals(c.Request.Context())
		if err != nil {
			respondError(c, err, "Не удалось получить цели")
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// UpdateGoalHandler обновляет информацию о цели
func UpdateGoalHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID цели")
		if !ok {
			return
		}
		var goal models.Goal
		if !bindJSON(c, &goal) {
			return
		}

		existing, err := repo.GetGoal(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось обновить цель")
			return
		}
		if existing == nil {
			notFound(c, "Цель не найдена")
			return
		}

		if err := repo.UpdateGoal(c.Request.Context(), id, goal); err != nil {
			respondError(c, err, "Не удалось обновить цель")
			return
		}
		c.JSON(http.StatusOK, goal.WithID(id))
	}
}

// DeleteGoalHandler удаляет цель по ID
func DeleteGoalHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID цели")
		if !ok {
			return
		}

		if err := repo.DeleteGoal(c.Request.Context(), id); err != nil {
			respondError(c, err, "Не удалось удалить цель")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Цель успешно удалена"})
	}
}

// AddContributionHandler добавляет взнос к цели
func AddContributionHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID цели")
		if !ok {
			return
		}

		var contribution struct {
			Amount int64 `json:"amount"`
		}
		if !bindJSON(c, &contribution) {
			return
		}

		goal, err := repo.AddToGoal(c.Request.Context(), id, contribution.Amount)
		if err != nil {
			respondError(c, err, "Не удалось добавить взнос")
			return
		}
		if goal == nil {
			notFound(c, "Цель не найдена")
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}
