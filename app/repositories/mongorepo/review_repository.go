package mongorepo

import (
	"context"
	"fmt"
	"time"

	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
	"yelpcamp/logging"
	"yelpcamp/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository implements repositories.ReviewRepository on MongoDB.
type ReviewRepository struct {
	store *Store
	coll  *mongo.Collection
}

// CreateForCampground pushes the reference onto the campground and inserts the
// review. Without transactions a failed insert pulls the reference back out.
func (r *ReviewRepository) CreateForCampground(ctx context.Context, campgroundID string, review *models.Review) (err error) {
	defer metrics.ObserveStore("review.create", time.Now(), &err)

	cid, ok := objectID(campgroundID)
	if !ok {
		return repositories.ErrNotFound
	}

	review.BeforeCreate()
	doc := &reviewDocument{
		ID:         primitive.NewObjectID(),
		Campground: cid,
		Body:       review.Body,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
	}
	campgrounds := r.store.Campgrounds.coll

	err = r.store.withTransaction(ctx, func(ctx context.Context) error {
		res, err := campgrounds.UpdateOne(ctx,
			bson.M{"_id": cid},
			bson.M{"$push": bson.M{"reviews": doc.ID}})
		if err != nil {
			return fmt.Errorf("failed to attach review: %w", err)
		}
		if res.MatchedCount == 0 {
			return repositories.ErrNotFound
		}

		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			if !r.store.transactions {
				r.detach(ctx, cid, doc.ID)
			}
			return fmt.Errorf("failed to insert review: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	review.ID = doc.ID.Hex()
	review.CampgroundID = campgroundID
	return nil
}

// detach undoes a reference push after a failed insert.
func (r *ReviewRepository) detach(ctx context.Context, cid, rid primitive.ObjectID) {
	_, err := r.store.Campgrounds.coll.UpdateOne(context.WithoutCancel(ctx),
		bson.M{"_id": cid},
		bson.M{"$pull": bson.M{"reviews": rid}})
	if err != nil {
		logging.Error().Err(err).
			Str("campground_id", cid.Hex()).
			Str("review_id", rid.Hex()).
			Msg("Failed to detach review after insert failure")
	}
}

// ListByIDs returns the reviews in the order of ids, skipping missing ones.
func (r *ReviewRepository) ListByIDs(ctx context.Context, ids []string) (_ []*models.Review, err error) {
	defer metrics.ObserveStore("review.list", time.Now(), &err)

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*models.Review{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	byID := make(map[primitive.ObjectID]*reviewDocument, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}
	reviews := make([]*models.Review, 0, len(docs))
	for _, oid := range oids {
		if doc, ok := byID[oid]; ok {
			reviews = append(reviews, doc.model())
		}
	}
	return reviews, nil
}

// DeleteFromCampground pulls the reference and deletes the review. The pull
// only matches when the campground references the review.
func (r *ReviewRepository) DeleteFromCampground(ctx context.Context, campgroundID, reviewID string) (err error) {
	defer metrics.ObserveStore("review.delete", time.Now(), &err)

	cid, ok := objectID(campgroundID)
	if !ok {
		return repositories.ErrNotFound
	}
	rid, ok := objectID(reviewID)
	if !ok {
		return repositories.ErrNotFound
	}
	campgrounds := r.store.Campgrounds.coll

	return r.store.withTransaction(ctx, func(ctx context.Context) error {
		res, err := campgrounds.UpdateOne(ctx,
			bson.M{"_id": cid, "reviews": rid},
			bson.M{"$pull": bson.M{"reviews": rid}})
		if err != nil {
			return fmt.Errorf("failed to detach review: %w", err)
		}
		if res.MatchedCount == 0 {
			return repositories.ErrNotFound
		}

		if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": rid}); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return nil
	})
}

func (r *ReviewRepository) DeleteAll(ctx context.Context) (_ int, err error) {
	defer metrics.ObserveStore("review.delete_all", time.Now(), &err)

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete reviews: %w", err)
	}
	return int(res.DeletedCount), nil
}

var _ repositories.ReviewRepository = (*ReviewRepository)(nil)
