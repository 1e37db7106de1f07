package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Villas          *mongo.Collection
	Reservations    *mongo.Collection
	ContactMessages *mongo.Collection
	Users           *mongo.Collection

	// database handle kept for the staging-swap reseed path.
	Database *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Villas:          db.Collection("villas"),
		Reservations:    db.Collection("reservations"),
		ContactMessages: db.Collection("contact_messages"),
		Users:           db.Collection("users"),
		Database:        db,
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Villas.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_normalized", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Reservations.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "villa_id", Value: 1}, {Key: "checkin_date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	return nil
}
