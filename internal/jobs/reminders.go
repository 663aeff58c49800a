package jobs

import (
	"context"
	"time"

	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/harentsoaR/swasth-api/internal/repository"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AppointmentFinder interface {
	Find(ctx context.Context, filter repository.AppointmentFilter) ([]models.Appointment, error)
}

type DoctorLookup interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Doctor, error)
}

type Reminder interface {
	SendReminder(ctx context.Context, doctor *models.Doctor, appointments []models.Appointment) error
}

// ReminderJob texts every doctor a digest of tomorrow's pending bookings.
type ReminderJob struct {
	Appointments AppointmentFinder
	Doctors      DoctorLookup
	Notifier     Reminder
	Logger       *zap.Logger
	// Now is replaced in tests.
	Now func() time.Time
}

// Run sends one reminder per doctor and returns how many went out.
// A failed SMS is logged and does not stop the others.
func (j *ReminderJob) Run(ctx context.Context) (int, error) {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	// Day-only bookings are stored at UTC midnight, so the window is UTC too.
	t := now().UTC()
	from := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	appointments, err := j.Appointments.Find(ctx, repository.AppointmentFilter{
		Status: models.AppointmentStatusPending,
		From:   from,
		To:     to,
	})
	if err != nil {
		return 0, err
	}
	if len(appointments) == 0 {
		j.Logger.Debug("no pending appointments tomorrow")
		return 0, nil
	}

	byDoctor := make(map[primitive.ObjectID][]models.Appointment)
	var ids []primitive.ObjectID
	for _, apt := range appointments {
		if _, seen := byDoctor[apt.DoctorID]; !seen {
			ids = append(ids, apt.DoctorID)
		}
		byDoctor[apt.DoctorID] = append(byDoctor[apt.DoctorID], apt)
	}

	doctors, err := j.Doctors.FindByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, id := range ids {
		doctor, ok := doctors[id]
		if !ok {
			j.Logger.Warn("appointments reference a missing doctor", zap.String("doctorId", id.Hex()))
			continue
		}
		if doctor.Phone == "" {
			continue
		}
		if err := j.Notifier.SendReminder(ctx, &doctor, byDoctor[id]); err != nil {
			j.Logger.Warn("reminder SMS failed", zap.String("doctorId", id.Hex()), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

// StartReminders schedules the job with a standard five field cron spec.
// The caller stops the returned scheduler on shutdown.
func StartReminders(spec string, job *ReminderJob) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		job.Logger.Info("running appointment reminders")
		sent, err := job.Run(ctx)
		if err != nil {
			job.Logger.Error("appointment reminders failed", zap.Error(err))
			return
		}
		job.Logger.Info("appointment reminders sent", zap.Int("count", sent))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
