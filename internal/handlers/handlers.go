package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
)

// parseID читает :id из пути. При ошибке сам отвечает 400.
func parseID(c *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибку репозитория в HTTP-ответ.
// Подробности ошибок хранилища клиенту не отдаются.
func respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var storeErr *database.StoreError
	if errors.As(err, &storeErr) {
		log.Printf("Ошибка хранилища: %v", storeErr)
	} else {
		log.Printf("%s: %v", message, err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Printf("Ошибка привязки JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных"})
		return false
	}
	return true
}

// respondCreated отвечает 201 с записью, прочитанной сразу после создания
func respondCreated[T any](c *gin.Context, id int64, created *T, err error, message string) {
	if err != nil {
		respondError(c, err, message)
		return
	}
	if created == nil {
		log.Printf("%s: запись с ID %d не найдена сразу после создания", message, id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusCreated, created)
}
