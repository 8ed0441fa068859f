package models

import (
	"errors"
	"time"
)

// ErrReviewNotAttached is returned when a review is not referenced by the campground.
var ErrReviewNotAttached = errors.New("review not attached to campground")

// BeforeCreate sets up any necessary fields before creation
func (c *Campground) BeforeCreate() {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.ReviewIDs == nil {
		c.ReviewIDs = []string{}
	}
}

// Apply copies submitted fields onto the campground, leaving its ID, review
// references and creation time untouched.
func (c *Campground) Apply(in *CampgroundInput) {
	c.Title = in.Title
	c.Location = in.Location
	c.Description = in.Description
	if in.Price != nil {
		c.Price = *in.Price
	}
	c.Image = in.Image
	c.UpdatedAt = time.Now()
}

// NewCampground builds an unsaved campground from a validated input.
func NewCampground(in *CampgroundInput) *Campground {
	c := &Campground{}
	c.Apply(in)
	c.BeforeCreate()
	return c
}

// AddReview appends a reference to the review and points the review back at the campground.
func (c *Campground) AddReview(review *Review) error {
	if review == nil {
		return errors.New("review cannot be nil")
	}
	if review.ID == "" {
		return errors.New("review must have an id")
	}

	review.CampgroundID = c.ID
	c.ReviewIDs = append(c.ReviewIDs, review.ID)
	return nil
}

// RemoveReview drops the reference to reviewID.
func (c *Campground) RemoveReview(reviewID string) error {
	for i, id := range c.ReviewIDs {
		if id == reviewID {
			c.ReviewIDs = append(c.ReviewIDs[:i], c.ReviewIDs[i+1:]...)
			return nil
		}
	}
	return ErrReviewNotAttached
}

// AverageRating is the mean rating of the populated reviews, 0 when there are none.
func (c *Campground) AverageRating() float64 {
	if len(c.Reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range c.Reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(c.Reviews))
}
