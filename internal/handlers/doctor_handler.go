package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/models"
	"go.uber.org/zap"
)

type CreateDoctorRequest struct {
	Name            string  `json:"name" binding:"required"`
	Specialty       string  `json:"specialty"`
	Email           string  `json:"email" binding:"omitempty,email"`
	Phone           string  `json:"phone"`
	ExperienceYears int     `json:"experienceYears" binding:"gte=0"`
	Rating          float64 `json:"rating" binding:"gte=0,lte=5"`
	Bio             string  `json:"bio"`
}

// GetDoctors lists collaborated doctors by name.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.FindAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("doctor listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor adds a collaborated doctor (admin only).
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	doctor := models.Doctor{
		Name:            strings.TrimSpace(req.Name),
		Specialty:       req.Specialty,
		Email:           req.Email,
		Phone:           req.Phone,
		ExperienceYears: req.ExperienceYears,
		Rating:          req.Rating,
		Bio:             req.Bio,
	}
	if err := h.Doctors.Insert(c.Request.Context(), &doctor); err != nil {
		h.Logger.Error("doctor insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}
	c.JSON(http.StatusCreated, doctor)
}
