package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/models"
)

func (h *Handler) GetHealthTips(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthTips)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is running"})
}
