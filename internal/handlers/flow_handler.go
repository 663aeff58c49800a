package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/flows"
	"go.uber.org/zap"
)

// runFlow binds the request body, runs the flow and writes its output.
// failure is the user-facing message for anything but bad input.
func runFlow[In, Out any](h *Handler, c *gin.Context, flow *flows.Flow[In, Out], failure string) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	out, err := flow.Run(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, flows.ErrInvalidInput) {
			msg := strings.TrimPrefix(err.Error(), flows.ErrInvalidInput.Error()+": ")
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		if !errors.Is(err, context.Canceled) {
			h.Logger.Error("flow failed", zap.String("flow", flow.Name), zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) AnalyzeSymptoms(c *gin.Context) {
	runFlow(h, c, h.Flows.AnalyzeSymptoms, "An error occurred while analyzing symptoms. Please try again.")
}

func (h *Handler) SuggestMedicalAdvice(c *gin.Context) {
	runFlow(h, c, h.Flows.MedicalAdvice, "An error occurred while getting medical advice. Please try again.")
}

func (h *Handler) ExtractPrescriptionText(c *gin.Context) {
	runFlow(h, c, h.Flows.ExtractPrescriptionText, "An error occurred while reading the prescription. Please try again.")
}
