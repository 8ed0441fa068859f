// Package mongorepo stores campgrounds and reviews in MongoDB, one collection
// each, with reviews referenced from their campground by ObjectID.
package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yelpcamp/logging"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Options configures the connection.
type Options struct {
	URI      string
	Database string
	// Transactions wraps multi-document writes in a session transaction.
	// It requires a replica set; without it writes are applied in sequence
	// and compensated on failure.
	Transactions   bool
	ConnectTimeout time.Duration
}

// Store owns a MongoDB client and the repositories built on it.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	Campgrounds  *CampgroundRepository
	Reviews      *ReviewRepository
}

// Open connects and pings the server before returning.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if opts.Database == "" {
		return nil, errors.New("mongo database is required")
	}
	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logging.Info().
		Str("database", opts.Database).
		Bool("transactions", opts.Transactions).
		Msg("Database connected")

	s := &Store{
		client:       client,
		db:           client.Database(opts.Database),
		transactions: opts.Transactions,
	}
	s.Campgrounds = &CampgroundRepository{store: s, coll: s.db.Collection(campgroundCollection)}
	s.Reviews = &ReviewRepository{store: s, coll: s.db.Collection(reviewCollection)}
	return s, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return err
	}
	logging.Info().Msg("Database closed")
	return nil
}

// Drop removes the whole database.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}

// withTransaction runs fn inside a session transaction when transactions are
// enabled, otherwise it runs fn directly.
func (s *Store) withTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
