package handlers

import (
	"context"

	"github.com/harentsoaR/swasth-api/internal/flows"
	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/harentsoaR/swasth-api/internal/repository"
	"github.com/harentsoaR/swasth-api/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MedicineStore interface {
	FindAll(ctx context.Context) ([]models.Medicine, error)
	SearchByName(ctx context.Context, query string) ([]models.Medicine, error)
}

type DoctorStore interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, id string) (*models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) error
}

type AppointmentStore interface {
	Insert(ctx context.Context, apt *models.Appointment) error
	Find(ctx context.Context, filter repository.AppointmentFilter) ([]models.Appointment, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type ClinicFinder interface {
	NearbyClinics(ctx context.Context, lat, lon float64, radius int) ([]models.Clinic, error)
	Geocode(ctx context.Context, query string) (*models.Location, error)
}

type Notifier interface {
	NotifyDoctorOfBooking(doctor *models.Doctor, apt *models.Appointment)
}

// Handler carries everything the HTTP handlers need.
type Handler struct {
	Medicines       MedicineStore
	Doctors         DoctorStore
	Appointments    AppointmentStore
	Users           UserStore
	Flows           *flows.Flows
	Clinics         ClinicFinder
	NotificationSvc Notifier
	JWT             *utils.JWTManager
	Logger          *zap.Logger
}

// NewHandler wires the Mongo repositories of db together with the services.
func NewHandler(db *mongo.Database, flowSet *flows.Flows, clinics ClinicFinder, notificationSvc Notifier, jwtManager *utils.JWTManager, logger *zap.Logger) *Handler {
	return &Handler{
		Medicines:       repository.NewMedicineRepository(db),
		Doctors:         repository.NewDoctorRepository(db),
		Appointments:    repository.NewAppointmentRepository(db),
		Users:           repository.NewUserRepository(db),
		Flows:           flowSet,
		Clinics:         clinics,
		NotificationSvc: notificationSvc,
		JWT:             jwtManager,
		Logger:          logger,
	}
}
