// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository manages a provider's recurring weekly windows.
type AvailabilityRepository interface {
	GetByProviderID(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error)
	ReplaceForProvider(ctx context.Context, providerID string, windows []models.AvailabilityWindow) ([]string, error)
	DeleteByID(ctx context.Context, providerID, windowID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("telecare")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_windows"),
	}
}
