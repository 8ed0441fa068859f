package controllers

import (
	"net/http"

	"yelpcamp/app/services"

	"github.com/gorilla/mux"
)

// ReviewController handles HTTP requests for reviews
type ReviewController struct {
	reviewService *services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Create adds a review to the campground and returns to its page
func (rc *ReviewController) Create(w http.ResponseWriter, r *http.Request) error {
	campgroundID := mux.Vars(r)["id"]

	in, err := bindReview(r)
	if err != nil {
		return err
	}

	review, err := rc.reviewService.CreateReview(r.Context(), campgroundID, in)
	if err != nil {
		return err
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, review)
		return nil
	}
	http.Redirect(w, r, campgroundPath(campgroundID), http.StatusSeeOther)
	return nil
}

// Delete removes a review from the campground and returns to its page
func (rc *ReviewController) Delete(w http.ResponseWriter, r *http.Request) error {
	vars := mux.Vars(r)
	campgroundID := vars["id"]

	if err := rc.reviewService.DeleteReview(r.Context(), campgroundID, vars["reviewId"]); err != nil {
		return err
	}

	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	http.Redirect(w, r, campgroundPath(campgroundID), http.StatusSeeOther)
	return nil
}
