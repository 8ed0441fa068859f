package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(p float64) *float64 { return &p }

func validCampgroundInput() *CampgroundInput {
	return &CampgroundInput{
		Title:       "Test Camp",
		Location:    "X, Y",
		Description: "d",
		Price:       price(15),
		Image:       "http://i",
	}
}

func TestCampgroundInputValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *CampgroundInput)
		wantErr string
	}{
		{
			name:   "valid campground",
			mutate: func(in *CampgroundInput) {},
		},
		{
			name:   "free campground",
			mutate: func(in *CampgroundInput) { in.Price = price(0) },
		},
		{
			name:    "missing title",
			mutate:  func(in *CampgroundInput) { in.Title = "" },
			wantErr: `"title" is required`,
		},
		{
			name:    "blank title after normalize",
			mutate:  func(in *CampgroundInput) { in.Title = "   " },
			wantErr: `"title" is required`,
		},
		{
			name:    "negative price",
			mutate:  func(in *CampgroundInput) { in.Price = price(-1) },
			wantErr: `"price" must be greater than or equal to 0`,
		},
		{
			name:    "missing price",
			mutate:  func(in *CampgroundInput) { in.Price = nil },
			wantErr: `"price" is required`,
		},
		{
			name:    "bad image",
			mutate:  func(in *CampgroundInput) { in.Image = "just text" },
			wantErr: `"image" must be a valid uri`,
		},
		{
			name: "several failures joined",
			mutate: func(in *CampgroundInput) {
				in.Location = ""
				in.Description = ""
			},
			wantErr: `"location" is required,"description" is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCampgroundInput()
			tt.mutate(in)
			in.Normalize()
			verr := in.Validate()
			if tt.wantErr == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantErr, verr.Error())
		})
	}
}

func TestNewCampground(t *testing.T) {
	c := NewCampground(validCampgroundInput())

	assert.Equal(t, "Test Camp", c.Title)
	assert.Equal(t, "X, Y", c.Location)
	assert.Equal(t, 15.0, c.Price)
	assert.Equal(t, "http://i", c.Image)
	assert.False(t, c.CreatedAt.IsZero())
	assert.NotNil(t, c.ReviewIDs)
	assert.Empty(t, c.ReviewIDs)
}

func TestCampgroundApplyKeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &Campground{ID: "abc", ReviewIDs: []string{"r1"}, CreatedAt: created}

	in := validCampgroundInput()
	in.Title = "Renamed"
	c.Apply(in)

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, "Renamed", c.Title)
	assert.Equal(t, []string{"r1"}, c.ReviewIDs)
	assert.Equal(t, created, c.CreatedAt)
	assert.True(t, c.UpdatedAt.After(created))
}

func TestCampgroundReviewManagement(t *testing.T) {
	c := &Campground{ID: "camp-1"}

	t.Run("add review", func(t *testing.T) {
		review := &Review{ID: "r1", Body: "Great", Rating: 5}
		require.NoError(t, c.AddReview(review))
		assert.Equal(t, []string{"r1"}, c.ReviewIDs)
		assert.Equal(t, "camp-1", review.CampgroundID)
	})

	t.Run("add nil review", func(t *testing.T) {
		assert.Error(t, c.AddReview(nil))
	})

	t.Run("add review without id", func(t *testing.T) {
		assert.Error(t, c.AddReview(&Review{Body: "x"}))
	})

	t.Run("remove existing review", func(t *testing.T) {
		require.NoError(t, c.RemoveReview("r1"))
		assert.Empty(t, c.ReviewIDs)
	})

	t.Run("remove non-existent review", func(t *testing.T) {
		assert.ErrorIs(t, c.RemoveReview("missing"), ErrReviewNotAttached)
	})
}

func TestAverageRating(t *testing.T) {
	c := &Campground{}
	assert.Equal(t, 0.0, c.AverageRating())

	c.Reviews = []*Review{{Rating: 5}, {Rating: 2}}
	assert.Equal(t, 3.5, c.AverageRating())
}

func TestCampgroundInputMarkInvalid(t *testing.T) {
	in := validCampgroundInput()
	in.Price = nil
	in.Title = ""
	in.MarkInvalid("price", "number", `"price" must be a number`)

	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Equal(t, `"price" must be a number,"title" is required`, verr.Error())
}
