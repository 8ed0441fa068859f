package repositories

import (
	"context"
	"errors"

	"yelpcamp/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// CampgroundRepository defines the interface for campground data access
type CampgroundRepository interface {
	Create(ctx context.Context, campground *models.Campground) error
	GetByID(ctx context.Context, id string) (*models.Campground, error)
	List(ctx context.Context) ([]*models.Campground, error)
	// Update writes the editable fields of the stored campground with the same ID.
	// Review references and creation time are left as stored.
	Update(ctx context.Context, campground *models.Campground) error
	// Delete removes the campground together with every review it references.
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
}

// ReviewRepository defines the interface for review data access. Writes that
// touch a campground's reference list and the review itself happen as one unit.
type ReviewRepository interface {
	CreateForCampground(ctx context.Context, campgroundID string, review *models.Review) error
	// ListByIDs returns the reviews in the order of ids, skipping ids that no longer exist.
	ListByIDs(ctx context.Context, ids []string) ([]*models.Review, error)
	DeleteFromCampground(ctx context.Context, campgroundID, reviewID string) error
	DeleteAll(ctx context.Context) (int, error)
}
