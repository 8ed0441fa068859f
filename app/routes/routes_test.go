package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
	"yelpcamp/app/views"
	"yelpcamp/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	store, err := repositories.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func setupTestHandler(t *testing.T) (http.Handler, *repositories.Store) {
	t.Helper()
	logging.SetLogger(logging.NewTestLogger(io.Discard))

	store := setupTestStore(t)
	handler := NewHandler(Dependencies{
		Campgrounds: store.Campgrounds,
		Reviews:     store.Reviews,
		Views:       views.Must(views.New("")),
	})
	return handler, store
}

func send(handler http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func testCampgroundForm() url.Values {
	return url.Values{
		"campground[title]":       {"Test Camp"},
		"campground[location]":    {"X, Y"},
		"campground[description]": {"d"},
		"campground[price]":       {"15"},
		"campground[image]":       {"http://i"},
	}
}

func listCampgrounds(t *testing.T, store *repositories.Store) []*models.Campground {
	t.Helper()
	campgrounds, err := store.Campgrounds.List(context.Background())
	require.NoError(t, err)
	return campgrounds
}

func createViaHTTP(t *testing.T, handler http.Handler) string {
	t.Helper()
	w := send(handler, http.MethodPost, "/campgrounds", testCampgroundForm())
	require.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/campgrounds/"))
	return location
}

func TestCreateRedirectsToDetail(t *testing.T) {
	handler, store := setupTestHandler(t)

	location := createViaHTTP(t, handler)

	campgrounds := listCampgrounds(t, store)
	require.Len(t, campgrounds, 1)
	assert.Equal(t, "/campgrounds/"+campgrounds[0].ID, location)
}

func TestCampgroundRoundTrip(t *testing.T) {
	handler, _ := setupTestHandler(t)

	location := createViaHTTP(t, handler)
	w := send(handler, http.MethodGet, location, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Test Camp")
	assert.Contains(t, body, "X, Y")
	assert.Contains(t, body, "d")
	assert.Contains(t, body, "15")
	assert.Contains(t, body, "http://i")
}

func TestMissingFieldIsRejected(t *testing.T) {
	handler, store := setupTestHandler(t)

	for _, field := range []string{"title", "location", "description", "price", "image"} {
		t.Run(field, func(t *testing.T) {
			form := testCampgroundForm()
			form.Del("campground[" + field + "]")

			w := send(handler, http.MethodPost, "/campgrounds", form)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "&#34;"+field+"&#34; is required")
			assert.Empty(t, listCampgrounds(t, store))
		})
	}
}

func TestReviewLifecycle(t *testing.T) {
	handler, store := setupTestHandler(t)
	ctx := context.Background()
	location := createViaHTTP(t, handler)
	id := strings.TrimPrefix(location, "/campgrounds/")

	review := url.Values{"review[body]": {"Lovely spot"}, "review[rating]": {"5"}}
	w := send(handler, http.MethodPost, location+"/reviews", review)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, location, w.Header().Get("Location"))

	campground, err := store.Campgrounds.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, campground.ReviewIDs, 1)
	reviewID := campground.ReviewIDs[0]

	reviews, err := store.Reviews.ListByIDs(ctx, campground.ReviewIDs)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Lovely spot", reviews[0].Body)

	assert.Contains(t, send(handler, http.MethodGet, location, nil).Body.String(), "Lovely spot")

	// Forms submit deletes as POST with _method.
	w = send(handler, http.MethodPost, location+"/reviews/"+reviewID+"?_method=DELETE", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	campground, err = store.Campgrounds.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, campground.ReviewIDs)
	reviews, err = store.Reviews.ListByIDs(ctx, []string{reviewID})
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestConcurrentReviewsAllLand(t *testing.T) {
	handler, store := setupTestHandler(t)
	location := createViaHTTP(t, handler)
	id := strings.TrimPrefix(location, "/campgrounds/")

	const writers = 20
	codes := make([]int, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			review := url.Values{"review[body]": {"Crowded"}, "review[rating]": {"3"}}
			codes[i] = send(handler, http.MethodPost, location+"/reviews", review).Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusSeeOther, code)
	}
	campground, err := store.Campgrounds.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, campground.ReviewIDs, writers)
}

func TestOversizedBodyIsRejected(t *testing.T) {
	handler, store := setupTestHandler(t)
	huge := strings.Repeat("a", 2<<20)

	t.Run("form", func(t *testing.T) {
		form := testCampgroundForm()
		form.Set("campground[description]", huge)

		w := send(handler, http.MethodPost, "/campgrounds", form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Request body too large")
	})

	t.Run("form with method override", func(t *testing.T) {
		location := createViaHTTP(t, handler)
		form := testCampgroundForm()
		form.Set("campground[description]", huge)

		w := send(handler, http.MethodPost, location+"?_method=PUT", form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Request body too large")
		assert.NoError(t, store.Clear())
	})

	t.Run("json", func(t *testing.T) {
		body := `{"campground":{"title":"T","location":"L","description":"` + huge + `","price":1,"image":"http://i"}}`
		req := httptest.NewRequest(http.MethodPost, "/campgrounds", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Request body too large")
	})

	assert.Empty(t, listCampgrounds(t, store))
}

func TestUpdateThroughMethodOverride(t *testing.T) {
	handler, store := setupTestHandler(t)
	location := createViaHTTP(t, handler)

	form := testCampgroundForm()
	form.Set("campground[title]", "Updated Camp")
	form.Set("_method", "PUT")
	w := send(handler, http.MethodPost, location, form)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, location, w.Header().Get("Location"))
	assert.Equal(t, "Updated Camp", listCampgrounds(t, store)[0].Title)
}

func TestDeleteCampground(t *testing.T) {
	handler, store := setupTestHandler(t)
	location := createViaHTTP(t, handler)
	send(handler, http.MethodPost, location+"/reviews", url.Values{"review[body]": {"x"}, "review[rating]": {"3"}})

	w := send(handler, http.MethodPost, location+"?_METHOD=DELETE", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/campgrounds", w.Header().Get("Location"))

	assert.Empty(t, listCampgrounds(t, store))
	assert.NotContains(t, send(handler, http.MethodGet, "/campgrounds", nil).Body.String(), "Test Camp")

	n, err := store.Reviews.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "reviews are deleted with their campground")
}

func TestMissingCampgroundIsNotFound(t *testing.T) {
	handler, _ := setupTestHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		form   url.Values
	}{
		{name: "show", method: http.MethodGet, target: "/campgrounds/0190b6f4-1c7e-7a4e-9b7e-3f1f3f1f3f1f"},
		{name: "show malformed id", method: http.MethodGet, target: "/campgrounds/not-an-id"},
		{name: "edit", method: http.MethodGet, target: "/campgrounds/not-an-id/edit"},
		{name: "update", method: http.MethodPut, target: "/campgrounds/not-an-id", form: testCampgroundForm()},
		{name: "delete", method: http.MethodDelete, target: "/campgrounds/not-an-id"},
		{name: "review", method: http.MethodPost, target: "/campgrounds/not-an-id/reviews", form: url.Values{"review[body]": {"x"}, "review[rating]": {"3"}}},
		{name: "delete review", method: http.MethodDelete, target: "/campgrounds/not-an-id/reviews/also-not"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(handler, tt.method, tt.target, tt.form)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "not found")
		})
	}
}

func TestUnmatchedRoutes(t *testing.T) {
	handler, _ := setupTestHandler(t)

	for _, target := range []string{"/nonexistent", "/campgrounds/a/b/c"} {
		w := send(handler, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page Not Found")
	}

	w := send(handler, http.MethodPatch, "/campgrounds", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticPages(t *testing.T) {
	handler, _ := setupTestHandler(t)

	w := send(handler, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "YelpCamp")

	w = send(handler, http.MethodGet, "/campgrounds/create", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Campground")

	w = send(handler, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "yelpcamp_http_requests_total")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
