package models

import (
	"time"

	"yelpcamp/app/validation"
)

// Campground is a listed campsite. ReviewIDs is the persisted, ordered list of
// review references; Reviews is filled in only when a view needs them.
type Campground struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	ReviewIDs   []string  `json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Reviews     []*Review `json:"-"`
}

// Review is a rating left on exactly one campground.
type Review struct {
	ID           string    `json:"id"`
	CampgroundID string    `json:"campground_id"`
	Body         string    `json:"body"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// CampgroundInput is the submitted campground form.
type CampgroundInput struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Location    string   `json:"location" form:"location" validate:"required"`
	Description string   `json:"description" form:"description" validate:"required"`
	Price       *float64 `json:"price" form:"price" validate:"required,gte=0"`
	Image       string   `json:"image" form:"image" validate:"required,url"`

	invalid *validation.RequestValidationError
}

// ReviewInput is the submitted review form.
type ReviewInput struct {
	Body   string `json:"body" form:"body" validate:"required"`
	Rating *int   `json:"rating" form:"rating" validate:"required,gte=1,lte=5"`

	invalid *validation.RequestValidationError
}
