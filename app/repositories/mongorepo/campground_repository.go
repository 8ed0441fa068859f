package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
	"yelpcamp/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampgroundRepository implements repositories.CampgroundRepository on MongoDB.
type CampgroundRepository struct {
	store *Store
	coll  *mongo.Collection
}

func (r *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) (err error) {
	defer metrics.ObserveStore("campground.create", time.Now(), &err)

	campground.ID = primitive.NewObjectID().Hex()
	campground.BeforeCreate()

	if _, err := r.coll.InsertOne(ctx, toCampgroundDocument(campground)); err != nil {
		return fmt.Errorf("failed to insert campground: %w", err)
	}
	return nil
}

func (r *CampgroundRepository) GetByID(ctx context.Context, id string) (_ *models.Campground, err error) {
	defer metrics.ObserveStore("campground.get", time.Now(), &err)

	oid, ok := objectID(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}

	var doc campgroundDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err)
	}
	return doc.model(), nil
}

// List returns campgrounds in insertion order. ObjectIDs lead with their
// creation second, so sorting on _id is enough.
func (r *CampgroundRepository) List(ctx context.Context) (_ []*models.Campground, err error) {
	defer metrics.ObserveStore("campground.list", time.Now(), &err)

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list campgrounds: %w", err)
	}
	var docs []campgroundDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode campgrounds: %w", err)
	}

	campgrounds := make([]*models.Campground, 0, len(docs))
	for i := range docs {
		campgrounds = append(campgrounds, docs[i].model())
	}
	return campgrounds, nil
}

func (r *CampgroundRepository) Update(ctx context.Context, campground *models.Campground) (err error) {
	defer metrics.ObserveStore("campground.update", time.Now(), &err)

	oid, ok := objectID(campground.ID)
	if !ok {
		return repositories.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       campground.Title,
		"location":    campground.Location,
		"description": campground.Description,
		"price":       campground.Price,
		"image":       campground.Image,
		"updated_at":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc campgroundDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return mapError(err)
	}
	*campground = *doc.model()
	return nil
}

// Delete removes the campground and then every review it referenced.
func (r *CampgroundRepository) Delete(ctx context.Context, id string) (err error) {
	defer metrics.ObserveStore("campground.delete", time.Now(), &err)

	oid, ok := objectID(id)
	if !ok {
		return repositories.ErrNotFound
	}

	return r.store.withTransaction(ctx, func(ctx context.Context) error {
		var doc campgroundDocument
		if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
			return mapError(err)
		}
		if len(doc.Reviews) == 0 {
			return nil
		}
		_, err := r.store.Reviews.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": doc.Reviews}})
		if err != nil {
			return fmt.Errorf("failed to delete reviews of campground %s: %w", id, err)
		}
		return nil
	})
}

func (r *CampgroundRepository) DeleteAll(ctx context.Context) (_ int, err error) {
	defer metrics.ObserveStore("campground.delete_all", time.Now(), &err)

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete campgrounds: %w", err)
	}
	return int(res.DeletedCount), nil
}

func mapError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repositories.ErrNotFound
	}
	return err
}

var _ repositories.CampgroundRepository = (*CampgroundRepository)(nil)
