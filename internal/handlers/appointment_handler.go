package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/harentsoaR/swasth-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CreateAppointmentRequest struct {
	PatientName string `json:"patientName"`
	Email       string `json:"email"`
	DoctorID    string `json:"doctorId"`
	Date        string `json:"date"`
	Symptoms    string `json:"symptoms"`
}

// parseAppointmentDate accepts a full RFC3339 timestamp or a bare day.
func parseAppointmentDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// --- CREATE APPOINTMENT ---
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.PatientName = strings.TrimSpace(req.PatientName)
	if req.PatientName == "" || req.DoctorID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patientName, doctorId and date are required"})
		return
	}

	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, use RFC3339 or YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	doctor, err := h.Doctors.FindByID(ctx, req.DoctorID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.Logger.Error("doctor lookup failed", zap.String("doctorId", req.DoctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	apt := models.Appointment{
		ID:          primitive.NewObjectID(),
		PatientName: req.PatientName,
		Email:       strings.TrimSpace(req.Email),
		DoctorID:    doctor.ID,
		Date:        date,
		Symptoms:    req.Symptoms,
		Status:      models.AppointmentStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.Appointments.Insert(ctx, &apt); err != nil {
		h.Logger.Error("appointment insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Logger.Info("appointment booked",
		zap.String("appointmentId", apt.ID.Hex()),
		zap.String("doctorId", doctor.ID.Hex()))

	// --- NOTIFICATION ---
	if h.NotificationSvc != nil {
		h.NotificationSvc.NotifyDoctorOfBooking(doctor, &apt)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": apt})
}

// --- GET APPOINTMENTS (with Filtering & Sorting) ---
func (h *Handler) GetAppointments(c *gin.Context) {
	var filter repository.AppointmentFilter

	if doctorID := c.Query("doctorId"); doctorID != "" {
		oid, err := primitive.ObjectIDFromHex(doctorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctorId"})
			return
		}
		filter.DoctorID = oid
	}

	// Filter by status (e.g., /api/appointments?status=pending)
	filter.Status = c.Query("status")

	// Filter by date range (e.g., /api/appointments?startDate=2024-07-01&endDate=2024-07-31)
	if startDateStr := c.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate, use YYYY-MM-DD"})
			return
		}
		filter.From = startDate
	}
	if endDateStr := c.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate, use YYYY-MM-DD"})
			return
		}
		// The whole end day is included.
		filter.To = endDate.AddDate(0, 0, 1)
	}

	appointments, err := h.Appointments.Find(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("appointment listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}
