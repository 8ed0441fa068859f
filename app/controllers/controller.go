package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"yelpcamp/app/apperror"
	"yelpcamp/app/middleware"
	"yelpcamp/app/views"
	"yelpcamp/logging"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing an error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorController is the single place errors are turned into responses.
type ErrorController struct {
	views *views.Renderer
}

// NewErrorController creates a new ErrorController
func NewErrorController(v *views.Renderer) *ErrorController {
	return &ErrorController{views: v}
}

// Handle adapts h to http.Handler, sending any returned error to Render.
func (ec *ErrorController) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			ec.Render(w, r, err)
		}
	})
}

// Render writes the error page for err. Errors without a status become 500s
// with the default message; 5xx errors are logged with their cause.
func (ec *ErrorController) Render(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		logging.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("Request failed")
	}

	if wantsJSON(r) {
		sendJSON(w, appErr.StatusCode, map[string]string{"error": appErr.Message})
		return
	}

	data := struct {
		Message    string
		StatusCode int
	}{
		Message:    appErr.Message,
		StatusCode: appErr.StatusCode,
	}
	if renderErr := ec.views.Render(w, appErr.StatusCode, views.Error, data); renderErr != nil {
		logging.Error().Err(renderErr).Msg("Failed to render error page")
		http.Error(w, appErr.Message, appErr.StatusCode)
	}
}

// NotFound handles every unmatched route.
func (ec *ErrorController) NotFound(w http.ResponseWriter, r *http.Request) {
	ec.Render(w, r, apperror.NotFound("Page Not Found"))
}

// Recover renders a recovered panic. It matches middleware.Recoverer.
func (ec *ErrorController) Recover(w http.ResponseWriter, r *http.Request, err error) {
	ec.Render(w, r, apperror.Internal(err))
}

// Helper methods for consistent response handling

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}
