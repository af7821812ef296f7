package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"whaleportfolio/internal/config"
)

// DB owns the single Mongo connection for the process lifetime. The driver
// pools connections internally; callers share one handle.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func Open(cfg config.MongoConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(Registry())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &DB{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.Database.Collection(name)
}

func (d *DB) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

func Close(d *DB) error {
	if d == nil || d.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.Client.Disconnect(ctx)
}

func NowUTC() time.Time {
	return time.Now().UTC()
}
