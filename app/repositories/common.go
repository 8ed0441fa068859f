package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	// Key prefixes for different entity types
	CampgroundKeyPrefix = "campground:"
	ReviewKeyPrefix     = "review:"
)

func campgroundKey(id string) []byte {
	return []byte(CampgroundKeyPrefix + id)
}

func reviewKey(id string) []byte {
	return []byte(ReviewKeyPrefix + id)
}

// newID returns a time-ordered identifier, so prefix iteration yields creation order.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// validID rejects ids that could escape their key prefix.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

// getEntity loads key into entity, mapping a missing key to ErrNotFound.
func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}

func setEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// maxConflictRetries bounds how often update reruns a conflicting transaction.
const maxConflictRetries = 100

// update runs fn in a read-write transaction. When another transaction commits
// a write to a key fn read, badger rejects the commit with ErrConflict; fn is
// then rerun against the new state, so concurrent writers apply in turn.
func update(ctx context.Context, db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = db.Update(fn); !errors.Is(err, badger.ErrConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("gave up after %d conflicting attempts: %w", maxConflictRetries, err)
}

// countPrefix counts keys under prefix without reading values.
func countPrefix(db *badger.DB, prefix []byte) (int, error) {
	count := 0
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// dropPrefix removes every key under prefix and reports how many there were.
func dropPrefix(db *badger.DB, prefix []byte) (int, error) {
	count, err := countPrefix(db, prefix)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	if err := db.DropPrefix(prefix); err != nil {
		return 0, fmt.Errorf("failed to drop %q keys: %w", prefix, err)
	}
	return count, nil
}
