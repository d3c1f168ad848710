// File: database/repository/provider/providerMongoCrud.go
package providerRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"telecare/models"
)

func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prov models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prov); err != nil {
		return nil, err
	}
	return &prov, nil
}

func (r *mongoProviderRepo) Upsert(ctx context.Context, provider models.Provider) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}
	if provider.CreatedAt.IsZero() {
		provider.CreatedAt = time.Now()
	}
	provider.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": provider.ID}, provider, opts); err != nil {
		return nil, err
	}
	return &provider, nil
}
