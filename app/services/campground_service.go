package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"yelpcamp/app/apperror"
	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
	"yelpcamp/app/validation"
)

// CampgroundService handles business logic for campgrounds
type CampgroundService struct {
	campgroundRepo repositories.CampgroundRepository
	reviewRepo     repositories.ReviewRepository
}

// NewCampgroundService creates a new CampgroundService
func NewCampgroundService(campgroundRepo repositories.CampgroundRepository, reviewRepo repositories.ReviewRepository) *CampgroundService {
	return &CampgroundService{
		campgroundRepo: campgroundRepo,
		reviewRepo:     reviewRepo,
	}
}

// ListCampgrounds returns every campground in creation order
func (s *CampgroundService) ListCampgrounds(ctx context.Context) ([]*models.Campground, error) {
	campgrounds, err := s.campgroundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campgrounds: %w", err)
	}
	return campgrounds, nil
}

// GetCampground retrieves a campground without its reviews
func (s *CampgroundService) GetCampground(ctx context.Context, id string) (*models.Campground, error) {
	campground, err := s.campgroundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, campgroundError(err)
	}
	return campground, nil
}

// ShowCampground retrieves a campground with its reviews populated
func (s *CampgroundService) ShowCampground(ctx context.Context, id string) (*models.Campground, error) {
	campground, err := s.GetCampground(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByIDs(ctx, campground.ReviewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	campground.Reviews = reviews

	return campground, nil
}

// CreateCampground validates the input and stores a new campground
func (s *CampgroundService) CreateCampground(ctx context.Context, in *models.CampgroundInput) (*models.Campground, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	campground := models.NewCampground(in)
	if err := s.campgroundRepo.Create(ctx, campground); err != nil {
		return nil, fmt.Errorf("failed to create campground: %w", err)
	}
	return campground, nil
}

// UpdateCampground validates the input and applies it to the campground with
// the given id. A missing campground is a 404.
func (s *CampgroundService) UpdateCampground(ctx context.Context, id string, in *models.CampgroundInput) (*models.Campground, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	campground := &models.Campground{ID: id}
	campground.Apply(in)
	if err := s.campgroundRepo.Update(ctx, campground); err != nil {
		return nil, campgroundError(err)
	}
	return campground, nil
}

// DeleteCampground deletes a campground and all its reviews
func (s *CampgroundService) DeleteCampground(ctx context.Context, id string) error {
	if err := s.campgroundRepo.Delete(ctx, id); err != nil {
		return campgroundError(err)
	}
	return nil
}

// validatable is satisfied by the submitted form models.
type validatable interface {
	Normalize()
	Validate() *validation.RequestValidationError
}

// validateInput normalizes and checks in, returning a 400 with every field
// message joined when it fails.
func validateInput(in validatable) error {
	in.Normalize()
	if verr := in.Validate(); verr != nil {
		return apperror.Wrap(verr, verr.Error(), http.StatusBadRequest)
	}
	return nil
}

func campgroundError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperror.NotFound("Campground not found")
	}
	return err
}
