// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository manages confirmed bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	GetByProviderIDAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("telecare")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
