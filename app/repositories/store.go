package repositories

import (
	"fmt"
	"io"
	"sync"

	"yelpcamp/logging"

	"github.com/dgraph-io/badger/v4"
)

// Store owns a Badger database and the repositories built on it.
type Store struct {
	db          *badger.DB
	mutex       sync.Mutex
	dbPath      string
	Campgrounds *BadgerCampgroundRepository
	Reviews     *BadgerReviewRepository
}

// Open opens (or creates) the database at path. An empty path opens an
// in-memory database, which tests use for isolation.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(badgerLogger{}).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	logging.Info().Str("path", path).Bool("in_memory", path == "").Msg("Database connected")
	return NewStore(db, path), nil
}

// NewStore wraps an already opened database.
func NewStore(db *badger.DB, path string) *Store {
	return &Store{
		db:          db,
		dbPath:      path,
		Campgrounds: NewBadgerCampgroundRepository(db),
		Reviews:     NewBadgerReviewRepository(db),
	}
}

// DB exposes the underlying database.
func (s *Store) DB() *badger.DB {
	return s.db
}

// Close closes the database. It is safe to call more than once.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.db.IsClosed() {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	logging.Info().Str("path", s.dbPath).Msg("Database closed")
	return nil
}

// Backup writes a full backup to w and returns the version it covers.
func (s *Store) Backup(w io.Writer) (uint64, error) {
	return s.db.Backup(w, 0)
}

// Restore loads a backup produced by Backup.
func (s *Store) Restore(r io.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	return s.db.Load(r, 4)
}

// Clear drops every key.
func (s *Store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.db.DropAll()
}

// badgerLogger routes Badger's internal logging through zerolog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Str("component", "badger").Msgf(format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Str("component", "badger").Msgf(format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Str("component", "badger").Msgf(format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Str("component", "badger").Msgf(format, args...)
}
