package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/stay"
)

var (
	ErrNotFound         = errors.New("reservation not found")
	ErrStoreUnavailable = errors.New("reservation store unavailable")
)

type Repository interface {
	Insert(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	GetByID(ctx context.Context, id string) (models.Reservation, error)
	List(ctx context.Context, limit, offset int) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	FindOverlapping(ctx context.Context, villaID string, rng stay.Range) ([]models.Reservation, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func repoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

// Insert writes a single document, so the reservation is either fully
// persisted with its id or not persisted at all.
func (r *MongoRepository) Insert(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	if reservation.ID == "" {
		reservation.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, reservation); err != nil {
		return models.Reservation{}, repoErr(err)
	}
	return reservation, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (models.Reservation, error) {
	var reservation models.Reservation
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Reservation{}, ErrNotFound
		}
		return models.Reservation{}, repoErr(err)
	}
	return reservation, nil
}

func (r *MongoRepository) List(ctx context.Context, limit, offset int) ([]models.Reservation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, repoErr(err)
	}
	defer cursor.Close(ctx)

	reservations := make([]models.Reservation, 0)
	for cursor.Next(ctx) {
		var reservation models.Reservation
		if err := cursor.Decode(&reservation); err != nil {
			return nil, repoErr(err)
		}
		reservations = append(reservations, reservation)
	}
	if err := cursor.Err(); err != nil {
		return nil, repoErr(err)
	}
	return reservations, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return repoErr(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindOverlapping returns non-cancelled stays for the villa sharing at least
// one night with the range. Dates are 2006-01-02 strings, so lexical
// comparison orders them correctly.
func (r *MongoRepository) FindOverlapping(ctx context.Context, villaID string, rng stay.Range) ([]models.Reservation, error) {
	query := bson.M{
		"villa_id":      villaID,
		"status":        bson.M{"$ne": models.ReservationStatusCancelled},
		"checkin_date":  bson.M{"$lt": rng.Checkout.Format("2006-01-02")},
		"checkout_date": bson.M{"$gt": rng.Checkin.Format("2006-01-02")},
	}

	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, repoErr(err)
	}
	defer cursor.Close(ctx)

	reservations := make([]models.Reservation, 0)
	for cursor.Next(ctx) {
		var reservation models.Reservation
		if err := cursor.Decode(&reservation); err != nil {
			return nil, repoErr(err)
		}
		reservations = append(reservations, reservation)
	}
	if err := cursor.Err(); err != nil {
		return nil, repoErr(err)
	}
	return reservations, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, repoErr(err)
	}
	return count, nil
}

// RevenueSince sums non-cancelled reservation totals created on or after from.
func (r *MongoRepository) RevenueSince(ctx context.Context, from time.Time) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"created_at": bson.M{"$gte": from},
			"status":     bson.M{"$ne": models.ReservationStatusCancelled},
		}},
		{"$group": bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total_price"},
		}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, repoErr(err)
	}
	defer cursor.Close(ctx)

	var revenue float64
	if cursor.Next(ctx) {
		var row struct {
			Revenue float64 `bson:"revenue"`
		}
		if err := cursor.Decode(&row); err != nil {
			return 0, repoErr(err)
		}
		revenue = row.Revenue
	}
	if err := cursor.Err(); err != nil {
		return 0, repoErr(err)
	}
	return revenue, nil
}
