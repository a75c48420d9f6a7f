package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports service liveness and database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "Connected"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		database = "Disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  database,
	})
}
