package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/harentsoaR/swasth-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{Collection: db.Collection(AppointmentsCollection)}
}

// AppointmentFilter narrows a listing. Zero values are ignored; From is
// inclusive and To exclusive.
type AppointmentFilter struct {
	DoctorID primitive.ObjectID
	Status   string
	From     time.Time
	To       time.Time
}

func (f AppointmentFilter) bson() bson.M {
	filter := bson.M{}
	if !f.DoctorID.IsZero() {
		filter["doctor"] = f.DoctorID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	dateRange := bson.M{}
	if !f.From.IsZero() {
		dateRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		dateRange["$lt"] = f.To
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}
	return filter
}

// Insert stores a new appointment. Nothing prevents two identical bookings.
func (r *AppointmentRepository) Insert(ctx context.Context, apt *models.Appointment) error {
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	if _, err := r.Collection.InsertOne(ctx, apt); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// Find lists appointments matching filter, earliest date first.
func (r *AppointmentRepository) Find(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter.bson(), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}
