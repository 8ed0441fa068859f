// Package routes wires controllers, middleware and the metrics endpoint into
// one http.Handler.
package routes

import (
	"net/http"

	"yelpcamp/app/controllers"
	"yelpcamp/app/middleware"
	"yelpcamp/app/repositories"
	"yelpcamp/app/services"
	"yelpcamp/app/views"
	"yelpcamp/metrics"

	"github.com/gorilla/mux"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	Campgrounds repositories.CampgroundRepository
	Reviews     repositories.ReviewRepository
	Views       *views.Renderer
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	campgroundService := services.NewCampgroundService(deps.Campgrounds, deps.Reviews)
	reviewService := services.NewReviewService(deps.Reviews, deps.Campgrounds)

	errs := controllers.NewErrorController(deps.Views)
	home := controllers.NewHomeController(deps.Views)
	campgroundController := controllers.NewCampgroundController(campgroundService, deps.Views)
	reviewController := controllers.NewReviewController(reviewService)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(errs.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(errs.NotFound)

	router.Handle("/", errs.Handle(home.Index)).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Campground web endpoints
	campgrounds := router.PathPrefix("/campgrounds").Subrouter()
	campgrounds.Handle("", errs.Handle(campgroundController.Index)).Methods("GET")
	campgrounds.Handle("", errs.Handle(campgroundController.Create)).Methods("POST")
	campgrounds.Handle("/create", errs.Handle(campgroundController.New)).Methods("GET")
	campgrounds.Handle("/{id}", errs.Handle(campgroundController.Show)).Methods("GET")
	campgrounds.Handle("/{id}", errs.Handle(campgroundController.Update)).Methods("PUT")
	campgrounds.Handle("/{id}", errs.Handle(campgroundController.Delete)).Methods("DELETE")
	campgrounds.Handle("/{id}/edit", errs.Handle(campgroundController.Edit)).Methods("GET")

	// Review endpoints
	campgrounds.Handle("/{id}/reviews", errs.Handle(reviewController.Create)).Methods("POST")
	campgrounds.Handle("/{id}/reviews/{reviewId}", errs.Handle(reviewController.Delete)).Methods("DELETE")

	return router
}

// NewHandler builds the router and wraps it in the middleware chain. The body
// cap comes first so no later stage reads past it; method override runs before
// routing so the router matches on the overridden method.
func NewHandler(deps Dependencies) http.Handler {
	router := SetupRoutes(deps)
	errs := controllers.NewErrorController(deps.Views)

	var handler http.Handler = router
	handler = middleware.Recoverer(errs.Recover)(handler)
	handler = middleware.Metrics(router)(handler)
	handler = middleware.Logger(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.MethodOverride(handler)
	handler = middleware.MaxBody(middleware.MaxBodyBytes)(handler)
	return handler
}
