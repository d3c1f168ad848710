// File: database/repository/fees/interface.go
package feeRepo

import (
	"context"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FeeRepository manages a provider's duration-priced fee table.
type FeeRepository interface {
	GetByProviderID(ctx context.Context, providerID string) ([]models.ServiceFee, error)
	ReplaceForProvider(ctx context.Context, providerID string, fees []models.ServiceFee) ([]string, error)
}

type mongoFeeRepo struct {
	coll *mongo.Collection
}

// NewMongoFeeRepo constructs a new MongoDB FeeRepository.
func NewMongoFeeRepo() FeeRepository {
	db := database.MongoClient.Database("telecare")
	return &mongoFeeRepo{
		coll: db.Collection("service_fees"),
	}
}
