package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"yelpcamp/app/repositories"
	"yelpcamp/app/repositories/mongorepo"
	"yelpcamp/config"
	"yelpcamp/logging"
)

// Swapped out by tests.
var (
	output io.Writer = stdout{}
	input  io.Reader = os.Stdin
)

// stdout writes to whatever os.Stdout is at the time of the call.
type stdout struct{}

func (stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// loadConfig reads the configuration and applies its logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	return cfg, nil
}

// store is whichever backend the configuration selects.
type store struct {
	campgrounds repositories.CampgroundRepository
	reviews     repositories.ReviewRepository

	badger *repositories.Store
	mongo  *mongorepo.Store
}

func openStore(ctx context.Context, cfg config.StoreConfig) (*store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		m, err := mongorepo.Open(ctx, mongorepo.Options{
			URI:            cfg.MongoURI,
			Database:       cfg.MongoDatabase,
			Transactions:   cfg.MongoTransactions,
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		return &store{campgrounds: m.Campgrounds, reviews: m.Reviews, mongo: m}, nil
	case config.DriverBadger, "":
		b, err := repositories.Open(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		return &store{campgrounds: b.Campgrounds, reviews: b.Reviews, badger: b}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// clear removes every campground and review.
func (s *store) clear(ctx context.Context) error {
	if s.mongo != nil {
		return s.mongo.Drop(ctx)
	}
	return s.badger.Clear()
}

func (s *store) close() error {
	if s.mongo != nil {
		return s.mongo.Close(context.Background())
	}
	return s.badger.Close()
}

// confirm asks a yes/no question on output and reads the answer from input.
func confirm(question string) bool {
	fmt.Fprintf(output, "%s [y/N] ", question)
	var response string
	fmt.Fscanln(input, &response)
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
