package repositories

import (
	"context"
	"errors"
	"time"

	"yelpcamp/app/models"
	"yelpcamp/metrics"

	"github.com/dgraph-io/badger/v4"
)

// BadgerReviewRepository implements ReviewRepository using BadgerDB
type BadgerReviewRepository struct {
	db *badger.DB
}

// NewBadgerReviewRepository creates a new BadgerReviewRepository
func NewBadgerReviewRepository(db *badger.DB) *BadgerReviewRepository {
	return &BadgerReviewRepository{db: db}
}

// CreateForCampground stores the review and appends its reference to the
// campground. Both writes commit together or not at all.
func (r *BadgerReviewRepository) CreateForCampground(ctx context.Context, campgroundID string, review *models.Review) (err error) {
	defer metrics.ObserveStore("review.create", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validID(campgroundID) {
		return ErrNotFound
	}

	review.ID = newID()
	review.BeforeCreate()

	return update(ctx, r.db, func(txn *badger.Txn) error {
		key := campgroundKey(campgroundID)

		var campground models.Campground
		if err := getEntity(txn, key, &campground); err != nil {
			return err
		}
		if err := campground.AddReview(review); err != nil {
			return err
		}

		// Parent first, then the review.
		if err := setEntity(txn, key, &campground); err != nil {
			return err
		}
		return setEntity(txn, reviewKey(review.ID), review)
	})
}

// ListByIDs retrieves reviews in the order given
func (r *BadgerReviewRepository) ListByIDs(ctx context.Context, ids []string) (_ []*models.Review, err error) {
	defer metrics.ObserveStore("review.list", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reviews := make([]*models.Review, 0, len(ids))
	err = r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			var review models.Review
			err := getEntity(txn, reviewKey(id), &review)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			reviews = append(reviews, &review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteFromCampground detaches the review from the campground and deletes it
// in one transaction. It returns ErrNotFound when the campground does not
// exist or does not reference the review.
func (r *BadgerReviewRepository) DeleteFromCampground(ctx context.Context, campgroundID, reviewID string) (err error) {
	defer metrics.ObserveStore("review.delete", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validID(campgroundID) || !validID(reviewID) {
		return ErrNotFound
	}

	return update(ctx, r.db, func(txn *badger.Txn) error {
		key := campgroundKey(campgroundID)

		var campground models.Campground
		if err := getEntity(txn, key, &campground); err != nil {
			return err
		}
		if err := campground.RemoveReview(reviewID); err != nil {
			return ErrNotFound
		}

		if err := setEntity(txn, key, &campground); err != nil {
			return err
		}
		return txn.Delete(reviewKey(reviewID))
	})
}

// DeleteAll removes every review and returns how many were removed
func (r *BadgerReviewRepository) DeleteAll(ctx context.Context) (_ int, err error) {
	defer metrics.ObserveStore("review.delete_all", time.Now(), &err)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return dropPrefix(r.db, []byte(ReviewKeyPrefix))
}
