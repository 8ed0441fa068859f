package services

import (
	"context"
	"net/http"
	"testing"

	"yelpcamp/app/apperror"
	"yelpcamp/app/models"
	"yelpcamp/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	campgroundRepo, reviewRepo := mock.NewRepositories()
	campgrounds := NewCampgroundService(campgroundRepo, reviewRepo)
	service := NewReviewService(reviewRepo, campgroundRepo)

	campground, err := campgrounds.CreateCampground(ctx, testCampgroundInput())
	require.NoError(t, err)

	var review *models.Review

	t.Run("create review grows reference list", func(t *testing.T) {
		review, err = service.CreateReview(ctx, campground.ID, &models.ReviewInput{Body: "Great", Rating: rating(5)})
		require.NoError(t, err)
		assert.NotEmpty(t, review.ID)
		assert.Equal(t, campground.ID, review.CampgroundID)

		stored, err := campgrounds.GetCampground(ctx, campground.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{review.ID}, stored.ReviewIDs)
		assert.Equal(t, 1, reviewRepo.Count())
	})

	t.Run("invalid review stores nothing", func(t *testing.T) {
		_, err := service.CreateReview(ctx, campground.ID, &models.ReviewInput{Body: "", Rating: rating(9)})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, `"body" is required,"rating" must be less than or equal to 5`, apperror.From(err).Message)
		assert.Equal(t, 1, reviewRepo.Count())
	})

	t.Run("review on missing campground", func(t *testing.T) {
		_, err := service.CreateReview(ctx, "nonexistent", &models.ReviewInput{Body: "x", Rating: rating(3)})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Equal(t, "Campground not found", apperror.From(err).Message)
	})

	t.Run("delete review shrinks reference list", func(t *testing.T) {
		require.NoError(t, service.DeleteReview(ctx, campground.ID, review.ID))

		stored, err := campgrounds.GetCampground(ctx, campground.ID)
		require.NoError(t, err)
		assert.Empty(t, stored.ReviewIDs)
		assert.Zero(t, reviewRepo.Count())
	})

	t.Run("delete review twice", func(t *testing.T) {
		err := service.DeleteReview(ctx, campground.ID, review.ID)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Equal(t, "Review not found", apperror.From(err).Message)
	})

	t.Run("delete review of missing campground", func(t *testing.T) {
		err := service.DeleteReview(ctx, "nonexistent", review.ID)
		assert.Equal(t, "Campground not found", apperror.From(err).Message)
	})
}
