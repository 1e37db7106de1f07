package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

var (
	ErrNotFound         = errors.New("villa not found")
	ErrConflict         = errors.New("villa id conflicts with an existing record")
	ErrStoreUnavailable = errors.New("catalog store unavailable")
)

// Store is the single authority over villa records. All mutation goes
// through Upsert and ReplaceAll so the integrity invariants stay auditable.
type Store interface {
	GetAll(ctx context.Context) ([]models.Villa, error)
	GetByID(ctx context.Context, id string) (models.Villa, error)
	Find(ctx context.Context, filter SearchFilter) ([]models.Villa, error)
	Upsert(ctx context.Context, villa models.Villa) error
	ReplaceAll(ctx context.Context, villas []models.Villa) error
}

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

// storeErr maps driver timeouts and connection failures onto
// ErrStoreUnavailable so callers can tell "try again" apart from bad input.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

func (s *MongoStore) GetAll(ctx context.Context) ([]models.Villa, error) {
	return s.findVillas(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (models.Villa, error) {
	var villa models.Villa
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&villa); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Villa{}, ErrNotFound
		}
		return models.Villa{}, storeErr(err)
	}
	return villa, nil
}

func (s *MongoStore) Find(ctx context.Context, filter SearchFilter) ([]models.Villa, error) {
	query := bson.M{}
	if filter.Destination != "" {
		query["location"] = bson.M{
			"$regex":   regexp.QuoteMeta(filter.Destination),
			"$options": "i",
		}
	}
	if filter.MinGuests > 0 {
		query["guests"] = bson.M{"$gte": filter.MinGuests}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return s.findVillas(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (s *MongoStore) findVillas(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Villa, error) {
	cursor, err := s.col.Find(ctx, query, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	villas := make([]models.Villa, 0)
	for cursor.Next(ctx) {
		var villa models.Villa
		if err := cursor.Decode(&villa); err != nil {
			return nil, storeErr(err)
		}
		villas = append(villas, villa)
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr(err)
	}
	return villas, nil
}

func (s *MongoStore) Upsert(ctx context.Context, villa models.Villa) error {
	existing, err := s.GetByID(ctx, villa.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err == nil && existing.NameNormalized != villa.NameNormalized {
		return fmt.Errorf("%w: id %q already belongs to %q", ErrConflict, villa.ID, existing.Name)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": villa.ID}, villa, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: name %q already exists", ErrConflict, villa.Name)
		}
		return storeErr(err)
	}
	return nil
}

// ReplaceAll installs a full catalog snapshot atomically. The batch is
// written to a staging collection and renamed over the live one, so readers
// never observe a partially replaced catalog.
func (s *MongoStore) ReplaceAll(ctx context.Context, villas []models.Villa) error {
	db := s.col.Database()
	staging := db.Collection(s.col.Name() + "_staging")

	if err := staging.Drop(ctx); err != nil {
		return storeErr(err)
	}

	// The rename carries the staging collection's indexes, so they must be
	// built here for the live catalog to keep its uniqueness guarantee.
	_, err := staging.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_normalized", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})
	if err != nil {
		return storeErr(err)
	}

	if len(villas) > 0 {
		docs := make([]interface{}, 0, len(villas))
		for _, villa := range villas {
			docs = append(docs, villa)
		}
		if _, err := staging.InsertMany(ctx, docs); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: snapshot contains duplicate names", ErrConflict)
			}
			return storeErr(err)
		}
	}

	cmd := bson.D{
		{Key: "renameCollection", Value: db.Name() + "." + staging.Name()},
		{Key: "to", Value: db.Name() + "." + s.col.Name()},
		{Key: "dropTarget", Value: true},
	}
	if err := db.Client().Database("admin").RunCommand(ctx, cmd).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
