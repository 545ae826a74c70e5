package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// CreateTransactionHandler создает транзакцию и возвращает сохраненную запись
func CreateTransactionHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tx models.Transaction
		if !bindJSON(c, &tx) {
			return
		}

		id, err := repo.AddTransaction(c.Request.Context(), tx)
		if err != nil {
			respondError(c, err, "Не удалось создать транзакцию")
			return
		}

		created, err := repo.GetTransaction(c.Request.Context(), id)
		respondCreated(c, id, created, err, "Не удалось получить созданную транзакцию")
	}
}

// GetTransactionsHandler возвращает транзакции, ?type= фильтрует по типу
func GetTransactionsHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		txs, err := repo.GetTransactionsByType(c.Request.Context(), c.Query("type"))
		if err != nil {
			respondError(c, err, "Не удалось получить транзакции")
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

func GetTransactionHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID транзакции")
		if !ok {
			return
		}

		tx, err := repo.GetTransaction(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось получить транзакцию")
			return
		}
		if tx == nil {
			notFound(c, "Транзакция не найдена")
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

// UpdateTransactionHandler полностью заменяет существующую транзакцию
func UpdateTransactionHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID транзакции")
		if !ok {
			return
		}
		var tx models.Transaction
		if !bindJSON(c, &tx) {
			return
		}

		existing, err := repo.GetTransaction(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Не удалось обновить транзакцию")
			return
		}
		if existing == nil {
			notFound(c, "Транзакция не найдена")
			return
		}

		if err := repo.UpdateTransaction(c.Request.Context(), id, tx); err != nil {
			respondError(c, err, "Не удалось обновить транзакцию")
			return
		}
		c.JSON(http.StatusOK, tx.WithID(id))
	}
}

func DeleteTransactionHandler(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "Некорректный ID транзакции")
		if !ok {
			return
		}

		if err := repo.DeleteTransaction(c.Request.Context(), id); err != nil {
			respondError(c, err, "Не удалось удалить транзакцию")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Транзакция успешно удалена"})
	}
}
