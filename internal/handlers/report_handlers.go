package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
)

// exportFailedMessage показывается пользователю при неудачном экспорте
const exportFailedMessage = "Gagal mengexport data"

// GetStatisticsHandler - сводка за текущий месяц
func GetStatisticsHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := repo.GetStatistics(c.Request.Context())
		if err != nil {
			respondError(c, err, "Ошибка при расчете статистики")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func GetCategoryStatisticsHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := repo.GetCategoryStatistics(c.Request.Context())
		if err != nil {
			respondError(c, err, "Ошибка при расчете статистики по категориям")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func GetMonthlyDataHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		months, err := repo.GetMonthlyData(c.Request.Context())
		if err != nil {
			respondError(c, err, "Ошибка при расчете данных по месяцам")
			return
		}
		c.JSON(http.StatusOK, months)
	}
}

func GetYearlyReportHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := repo.GetYearlyReport(c.Request.Context())
		if err != nil {
			respondError(c, err, "Ошибка при формировании годового отчета")
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// ExportHandler отдает все транзакции одним CSV-файлом
func ExportHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := repo.ExportToCSV(c.Request.Context())
		if err != nil {
			log.Printf("Ошибка экспорта: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": exportFailedMessage})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", repository.ExportFileName(repo.Now())))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(data))
	}
}
