package repositories

import (
	"context"
	"fmt"
	"time"

	"yelpcamp/app/models"
	"yelpcamp/metrics"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCampgroundRepository implements CampgroundRepository using BadgerDB
type BadgerCampgroundRepository struct {
	db *badger.DB
}

// NewBadgerCampgroundRepository creates a new BadgerCampgroundRepository
func NewBadgerCampgroundRepository(db *badger.DB) *BadgerCampgroundRepository {
	return &BadgerCampgroundRepository{db: db}
}

// Create assigns an ID and stores the campground
func (r *BadgerCampgroundRepository) Create(ctx context.Context, campground *models.Campground) (err error) {
	defer metrics.ObserveStore("campground.create", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}

	campground.ID = newID()
	campground.BeforeCreate()

	return update(ctx, r.db, func(txn *badger.Txn) error {
		return setEntity(txn, campgroundKey(campground.ID), campground)
	})
}

// GetByID retrieves a campground by ID
func (r *BadgerCampgroundRepository) GetByID(ctx context.Context, id string) (_ *models.Campground, err error) {
	defer metrics.ObserveStore("campground.get", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	var campground models.Campground
	err = r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, campgroundKey(id), &campground)
	})
	if err != nil {
		return nil, err
	}
	return &campground, nil
}

// List retrieves every campground in creation order
func (r *BadgerCampgroundRepository) List(ctx context.Context) (_ []*models.Campground, err error) {
	defer metrics.ObserveStore("campground.list", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	campgrounds := []*models.Campground{}
	err = r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(CampgroundKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var campground models.Campground
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &campground)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal campground: %w", err)
			}
			campgrounds = append(campgrounds, &campground)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campgrounds, nil
}

// Update writes the editable fields over the stored campground
func (r *BadgerCampgroundRepository) Update(ctx context.Context, campground *models.Campground) (err error) {
	defer metrics.ObserveStore("campground.update", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validID(campground.ID) {
		return ErrNotFound
	}

	return update(ctx, r.db, func(txn *badger.Txn) error {
		key := campgroundKey(campground.ID)

		var stored models.Campground
		if err := getEntity(txn, key, &stored); err != nil {
			return err
		}

		stored.Title = campground.Title
		stored.Location = campground.Location
		stored.Description = campground.Description
		stored.Price = campground.Price
		stored.Image = campground.Image
		stored.UpdatedAt = time.Now()

		if err := setEntity(txn, key, &stored); err != nil {
			return err
		}
		*campground = stored
		return nil
	})
}

// Delete removes a campground and its reviews in one transaction
func (r *BadgerCampgroundRepository) Delete(ctx context.Context, id string) (err error) {
	defer metrics.ObserveStore("campground.delete", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validID(id) {
		return ErrNotFound
	}

	return update(ctx, r.db, func(txn *badger.Txn) error {
		key := campgroundKey(id)

		var stored models.Campground
		if err := getEntity(txn, key, &stored); err != nil {
			return err
		}

		for _, reviewID := range stored.ReviewIDs {
			if err := txn.Delete(reviewKey(reviewID)); err != nil {
				return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
			}
		}
		return txn.Delete(key)
	})
}

// DeleteAll removes every campground and returns how many were removed
func (r *BadgerCampgroundRepository) DeleteAll(ctx context.Context) (_ int, err error) {
	defer metrics.ObserveStore("campground.delete_all", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return dropPrefix(r.db, []byte(CampgroundKeyPrefix))
}
