package controllers

import (
	"net/http"
	"net/url"

	"yelpcamp/app/models"
	"yelpcamp/app/services"
	"yelpcamp/app/views"

	"github.com/gorilla/mux"
)

// CampgroundController handles HTTP requests for campgrounds
type CampgroundController struct {
	campgroundService *services.CampgroundService
	views             *views.Renderer
}

// NewCampgroundController creates a new CampgroundController
func NewCampgroundController(campgroundService *services.CampgroundService, v *views.Renderer) *CampgroundController {
	return &CampgroundController{
		campgroundService: campgroundService,
		views:             v,
	}
}

type campgroundPage struct {
	Campground *models.Campground
}

// Index lists every campground
func (cc *CampgroundController) Index(w http.ResponseWriter, r *http.Request) error {
	campgrounds, err := cc.campgroundService.ListCampgrounds(r.Context())
	if err != nil {
		return err
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, map[string]interface{}{"campgrounds": campgrounds})
		return nil
	}

	data := struct {
		Campgrounds []*models.Campground
	}{
		Campgrounds: campgrounds,
	}
	return cc.views.Render(w, http.StatusOK, views.CampgroundIndex, data)
}

// New displays the form for creating a campground
func (cc *CampgroundController) New(w http.ResponseWriter, r *http.Request) error {
	return cc.views.Render(w, http.StatusOK, views.CampgroundNew, campgroundPage{Campground: &models.Campground{}})
}

// Show displays a campground with its reviews
func (cc *CampgroundController) Show(w http.ResponseWriter, r *http.Request) error {
	campground, err := cc.campgroundService.ShowCampground(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return err
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, map[string]interface{}{
			"campground": campground,
			"reviews":    campground.Reviews,
		})
		return nil
	}
	return cc.views.Render(w, http.StatusOK, views.CampgroundShow, campgroundPage{Campground: campground})
}

// Edit displays the form for editing a campground
func (cc *CampgroundController) Edit(w http.ResponseWriter, r *http.Request) error {
	campground, err := cc.campgroundService.GetCampground(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return err
	}
	return cc.views.Render(w, http.StatusOK, views.CampgroundEdit, campgroundPage{Campground: campground})
}

// Create handles creating a new campground
func (cc *CampgroundController) Create(w http.ResponseWriter, r *http.Request) error {
	in, err := bindCampground(r)
	if err != nil {
		return err
	}

	campground, err := cc.campgroundService.CreateCampground(r.Context(), in)
	if err != nil {
		return err
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusCreated, campground)
		return nil
	}
	http.Redirect(w, r, campgroundPath(campground.ID), http.StatusSeeOther)
	return nil
}

// Update handles editing an existing campground
func (cc *CampgroundController) Update(w http.ResponseWriter, r *http.Request) error {
	in, err := bindCampground(r)
	if err != nil {
		return err
	}

	campground, err := cc.campgroundService.UpdateCampground(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		return err
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, campground)
		return nil
	}
	http.Redirect(w, r, campgroundPath(campground.ID), http.StatusSeeOther)
	return nil
}

// Delete handles deleting a campground and its reviews
func (cc *CampgroundController) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := cc.campgroundService.DeleteCampground(r.Context(), mux.Vars(r)["id"]); err != nil {
		return err
	}

	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
	return nil
}

func campgroundPath(id string) string {
	return "/campgrounds/" + url.PathEscape(id)
}
