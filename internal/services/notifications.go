package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/harentsoaR/swasth-api/internal/models"
	"go.uber.org/zap"
)

// NotificationService sends SMS to collaborated doctors through Textbelt.
type NotificationService struct {
	APIKey string
	URL    string
	HTTP   *http.Client
	Logger *zap.Logger
}

func NewNotificationService(apiKey, url string, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		APIKey: apiKey,
		URL:    url,
		HTTP:   &http.Client{Timeout: 15 * time.Second},
		Logger: logger,
	}
}

// NotifyDoctorOfBooking tells the doctor about a new booking. The SMS goes
// out in a goroutine so it never blocks the API response.
func (s *NotificationService) NotifyDoctorOfBooking(doctor *models.Doctor, apt *models.Appointment) {
	if doctor.Phone == "" {
		s.Logger.Info("SMS not sent: doctor has no phone number", zap.String("doctorId", doctor.ID.Hex()))
		return
	}

	body := fmt.Sprintf(
		"New appointment request: %s on %s.",
		apt.PatientName,
		apt.Date.Format("Jan 2 at 3:04 PM"),
	)
	if apt.Symptoms != "" {
		body += " Symptoms: " + truncate(apt.Symptoms, 80)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.SendSMS(ctx, doctor.Phone, body); err != nil {
			s.Logger.Warn("booking SMS failed", zap.String("phone", doctor.Phone), zap.Error(err))
		}
	}()
}

// SendReminder sends the doctor a digest of the pending appointments they
// have coming up.
func (s *NotificationService) SendReminder(ctx context.Context, doctor *models.Doctor, appointments []models.Appointment) error {
	if doctor.Phone == "" {
		return errors.New("doctor has no phone number")
	}
	if len(appointments) == 0 {
		return nil
	}

	names := make([]string, 0, len(appointments))
	for _, apt := range appointments {
		names = append(names, fmt.Sprintf("%s (%s)", apt.PatientName, apt.Date.Format("3:04 PM")))
	}
	body := fmt.Sprintf("Reminder: %d pending appointment(s) tomorrow: %s.", len(appointments), strings.Join(names, ", "))
	return s.SendSMS(ctx, doctor.Phone, body)
}

type textbeltResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SendSMS posts one message to Textbelt.
func (s *NotificationService) SendSMS(ctx context.Context, phone, message string) error {
	postBody, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.APIKey,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(postBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("textbelt request: %w", err)
	}
	defer resp.Body.Close()

	var result textbeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode textbelt response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt: %s", result.Error)
	}

	s.Logger.Info("SMS sent", zap.String("phone", phone))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
