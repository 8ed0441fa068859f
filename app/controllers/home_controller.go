package controllers

import (
	"net/http"

	"yelpcamp/app/views"
)

// HomeController serves the landing page
type HomeController struct {
	views *views.Renderer
}

// NewHomeController creates a new HomeController
func NewHomeController(v *views.Renderer) *HomeController {
	return &HomeController{views: v}
}

// Index renders the home page
func (hc *HomeController) Index(w http.ResponseWriter, r *http.Request) error {
	return hc.views.Render(w, http.StatusOK, views.Home, nil)
}
