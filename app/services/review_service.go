package services

import (
	"context"
	"errors"
	"fmt"

	"yelpcamp/app/apperror"
	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
)

// ReviewService handles business logic for reviews
type ReviewService struct {
	reviewRepo     repositories.ReviewRepository
	campgroundRepo repositories.CampgroundRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo repositories.ReviewRepository, campgroundRepo repositories.CampgroundRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		campgroundRepo: campgroundRepo,
	}
}

// CreateReview validates the input and attaches a new review to the campground
func (s *ReviewService) CreateReview(ctx context.Context, campgroundID string, in *models.ReviewInput) (*models.Review, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	review := models.NewReview(in)
	if err := s.reviewRepo.CreateForCampground(ctx, campgroundID, review); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.NotFound("Campground not found")
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// DeleteReview detaches the review from the campground and deletes it
func (s *ReviewService) DeleteReview(ctx context.Context, campgroundID, reviewID string) error {
	if err := s.reviewRepo.DeleteFromCampground(ctx, campgroundID, reviewID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			if _, getErr := s.campgroundRepo.GetByID(ctx, campgroundID); getErr != nil {
				return campgroundError(getErr)
			}
			return apperror.NotFound("Review not found")
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
