// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository manages provider profiles.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	Upsert(ctx context.Context, provider models.Provider) (*models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("telecare")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
