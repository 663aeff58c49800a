package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentStatusPending is the only status an appointment ever has.
const AppointmentStatusPending = "pending"

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName string             `bson:"patientName" json:"patientName"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	DoctorID    primitive.ObjectID `bson:"doctor" json:"doctor"`
	Date        time.Time          `bson:"date" json:"date"`
	Symptoms    string             `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
