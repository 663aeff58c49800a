package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) GetMedicines(c *gin.Context) {
	medicines, err := h.Medicines.FindAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("medicine listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medicines"})
		return
	}
	c.JSON(http.StatusOK, medicines)
}

// SearchMedicines compares prices for medicines whose name contains q.
func (h *Handler) SearchMedicines(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len([]rune(q)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Medicine name must be at least 2 characters."})
		return
	}

	medicines, err := h.Medicines.SearchByName(c.Request.Context(), q)
	if err != nil {
		h.Logger.Error("medicine search failed", zap.String("q", q), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search medicines"})
		return
	}

	results := make([]models.MedicineComparison, 0, len(medicines))
	for _, m := range medicines {
		results = append(results, models.NewMedicineComparison(m))
	}
	c.JSON(http.StatusOK, results)
}
