package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/valeriaulyamaeva/finance-tracker/internal/handlers"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
)

const requestIDHeader = "X-Request-ID"

// CORSMiddleware разрешает запросы только с перечисленных origin
func CORSMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"POST", "GET", "OPTIONS", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RequestIDMiddleware проставляет X-Request-ID, если клиент его не прислал
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func SetupRouter(repo *repository.Repository, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(RequestIDMiddleware())
	if len(origins) > 0 {
		r.Use(CORSMiddleware(origins))
	}

	api := r.Group("/api")

	api.GET("/transactions", handlers.GetTransactionsHandler(repo))
	api.POST("/transactions", handlers.CreateTransactionHandler(repo))
	api.GET("/transactions/:id", handlers.GetTransactionHandler(repo))
	api.PUT("/transactions/:id", handlers.UpdateTransactionHandler(repo))
	api.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(repo))

	api.GET("/plans", handlers.GetAllPlansHandler(repo))
	api.POST("/plans", handlers.CreatePlanHandler(repo))
	api.GET("/plans/:id", handlers.GetPlanHandler(repo))
	api.PUT("/plans/:id", handlers.UpdatePlanHandler(repo))
	api.DELETE("/plans/:id", handlers.DeletePlanHandler(repo))

	api.GET("/categories", handlers.GetCategoriesHandler(repo))
	api.GET("/categories/:id", handlers.GetCategoryHandler(repo))

	api.GET("/budgets", handlers.GetBudgetsHandler(repo))
	api.POST("/budgets", handlers.CreateBudgetHandler(repo))
	api.GET("/budgets/progress", handlers.GetBudgetProgressHandler(repo))
	api.GET("/budgets/:id", handlers.GetBudgetHandler(repo))
	api.PUT("/budgets/:id", handlers.UpdateBudgetHandler(repo))
	api.DELETE("/budgets/:id", handlers.DeleteBudgetHandler(repo))

	api.GET("/goals", handlers.GetAllGoalsHandler(repo))
	api.POST("/goals", handlers.CreateGoalHandler(repo))
	api.GET("/goals/:id", handlers.GetGoalHandler(repo))
	api.PUT("/goals/:id", handlers.UpdateGoalHandler(repo))
	api.DELETE("/goals/:id", handlers.DeleteGoalHandler(repo))
	api.POST("/goals/:id/contributions", handlers.AddContributionHandler(repo))

	api.GET("/reminders", handlers.GetRemindersHandler(repo))
	api.POST("/reminders", handlers.CreateReminderHandler(repo))
	api.GET("/reminders/:id", handlers.GetReminderHandler(repo))
	api.PUT("/reminders/:id", handlers.UpdateReminderHandler(repo))
	api.DELETE("/reminders/:id", handlers.DeleteReminderHandler(repo))
	api.POST("/reminders/:id/paid", handlers.MarkReminderPaidHandler(repo))

	api.GET("/stats", handlers.GetStatisticsHandler(repo))
	api.GET("/stats/categories", handlers.GetCategoryStatisticsHandler(repo))
	api.GET("/stats/monthly", handlers.GetMonthlyDataHandler(repo))
	api.GET("/reports/yearly", handlers.GetYearlyReportHandler(repo))
	api.GET("/export", handlers.ExportHandler(repo))

	return r
}
