// File: database/repository/fees/feesMongoCrud.go
package feeRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"telecare/models"
)

func (r *mongoFeeRepo) GetByProviderID(ctx context.Context, providerID string) ([]models.ServiceFee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	opts := options.Find().SetSort(bson.D{{Key: "duration", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fees []models.ServiceFee
	if err := cursor.All(ctx, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

func (r *mongoFeeRepo) ReplaceForProvider(ctx context.Context, providerID string, fees []models.ServiceFee) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"providerId": providerID}); err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return []string{}, nil
	}

	docs := make([]interface{}, len(fees))
	ids := make([]string, len(fees))
	for i, f := range fees {
		if f.ID == "" {
			f.ID = uuid.New().String()
		}
		f.ProviderID = providerID
		docs[i] = f
		ids[i] = f.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}
