package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	vehicleerrors "travelease/internal/vehicles/errors"
	"travelease/pkg/config"
	"travelease/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "vehicles"

	SortLowToHigh = "lowToHigh"
	SortHighToLow = "highToLow"
)

// ListFilter holds the optional listing constraints. Zero values impose no
// constraint on that dimension.
type ListFilter struct {
	Category string
	Location string
	Sort     string
}

type VehicleRepository interface {
	FindAll(ctx context.Context, filter ListFilter) ([]*model.Vehicle, error)
	FindByID(ctx context.Context, id string) (*model.Vehicle, error)
	Insert(ctx context.Context, vehicle *model.Vehicle) (string, error)
	FindByOwnerEmail(ctx context.Context, email string) ([]*model.Vehicle, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type mongoVehicleRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoVehicleRepository(cfg *config.Config) VehicleRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoVehicleRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoVehicleRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// buildListQuery translates a ListFilter into a Mongo predicate and sort
// specification. Category and location are case-sensitive exact matches; an
// unrecognized sort value leaves the natural order.
func buildListQuery(filter ListFilter) (bson.M, bson.D) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}

	var sort bson.D
	switch filter.Sort {
	case SortLowToHigh:
		sort = bson.D{{Key: "price", Value: 1}}
	case SortHighToLow:
		sort = bson.D{{Key: "price", Value: -1}}
	}

	return query, sort
}

// buildOwnerQuery matches the owner email case-insensitively with an anchored
// pattern. QuoteMeta keeps exact-match semantics for emails containing regex
// metacharacters.
func buildOwnerQuery(email string) bson.M {
	return bson.M{"userEmail": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(email) + "$",
		Options: "i",
	}}
}

func (r *mongoVehicleRepository) FindAll(ctx context.Context, filter ListFilter) ([]*model.Vehicle, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	query, sort := buildListQuery(filter)
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []*model.Vehicle{}
	if err = cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *mongoVehicleRepository) FindByID(ctx context.Context, id string) (*model.Vehicle, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", vehicleerrors.ErrInvalidID, id)
	}

	var vehicle model.Vehicle
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, vehicleerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *mongoVehicleRepository) Insert(ctx context.Context, vehicle *model.Vehicle) (string, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return "", fmt.Errorf("failed to insert vehicle: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		vehicle.ID = oid.Hex()
	}
	return vehicle.ID, nil
}

func (r *mongoVehicleRepository) FindByOwnerEmail(ctx context.Context, email string) ([]*model.Vehicle, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, buildOwnerQuery(email))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by owner: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []*model.Vehicle{}
	if err = cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	return vehicles, nil
}

// UpdateFields merges the supplied fields into the document via $set and
// returns the matched count. Matching zero documents is not an error.
func (r *mongoVehicleRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", vehicleerrors.ErrInvalidID, id)
	}

	update := bson.M{"$set": fields}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return result.MatchedCount, nil
}

// Delete removes the document and returns the deleted count. Deleting a
// missing document is not an error.
func (r *mongoVehicleRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", vehicleerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete vehicle: %w", err)
	}

	return result.DeletedCount, nil
}
