package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// GetCategoriesHandler возвращает категории, ?type= оставляет только доходы или расходы
func GetCategoriesHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		catType := c.Query("type")

		var (
			categories []models.Category
			err        error
		)
		if catType == "" {
			categories, err = repo.GetAllCategories(c.Request.Context())
		} else {
			categories, err = repo.GetCategoriesByType(c.Request.Context(), catType)
		}
		if err != nil {
			respondError(c, err, "Ошибка при получении списка категорий")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetCategoryHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID категории")
		if !ok {
			return
		}

		category, err := repo.GetCategory(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Ошибка при получении категории")
			return
		}
		if category == nil {
			notFound(c, "Категория не найдена")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
