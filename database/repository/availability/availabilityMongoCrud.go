// File: database/repository/availability/availabilityMongoCrud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"telecare/models"
)

func (r *mongoAvailabilityRepo) GetByProviderID(ctx context.Context, providerID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

// ReplaceForProvider swaps the provider's whole weekly schedule in one shot.
// Window edits always arrive as a full replacement from the profile screen.
func (r *mongoAvailabilityRepo) ReplaceForProvider(ctx context.Context, providerID string, windows []models.AvailabilityWindow) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"providerId": providerID}); err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []string{}, nil
	}

	docs := make([]interface{}, len(windows))
	ids := make([]string, len(windows))
	for i, w := range windows {
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
		w.ProviderID = providerID
		docs[i] = w
		ids[i] = w.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, providerID, windowID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": windowID, "providerId": providerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
