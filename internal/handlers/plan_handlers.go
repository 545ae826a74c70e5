package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

func CreatePlanHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plan models.Plan
		if !bindJSON(c, &plan) {
			return
		}

		id, err := repo.AddPlan(c.Request.Context(), plan)
		if err != nil {
			respondError(c, err, "Не удалось создать план")
			return
		}

		created, err := repo.GetPlan(c.Request.Context(), id)
		respondCreated(c, id, created, err, "Не удалось получить созданный план")
	}
}

// GetAllPlansHandler возвращает планы по убыванию приоритета
func GetAllPlansHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := repo.GetAllPlans(c.Request.Context())
		if err != nil {
			respondError(c, err, "Не удалось получить планы")
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

func GetPlanHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID плана")
		if !ok {
			return
		}

		plan, err := repo.GetPlan(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось получить план")
			return
		}
		if plan == nil {
			notFound(c, "План не найден")
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

func UpdatePlanHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID плана")
		if !ok {
			return
		}
		var plan models.Plan
		if !bindJSON(c, &plan) {
			return
		}

		existing, err := repo.GetPlan(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось обновить план")
			return
		}
		if existing == nil {
			notFound(c, "План не найден")
			return
		}

		if err := repo.UpdatePlan(c.Request.Context(), id, plan); err != nil {
			respondError(c, err, "Не удалось обновить план")
			return
		}
		c.JSON(http.StatusOK, plan.WithID(id))
	}
}

func DeletePlanHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID плана")
		if !ok {
			return
		}

		if err := repo.DeletePlan(c.Request.Context(), id); err != nil {
			respondError(c, err, "Не удалось удалить план")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "План успешно удален"})
	}
}
