package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"yelpcamp/app/models"
	"yelpcamp/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeederRun(t *testing.T) {
	ctx := context.Background()
	campgrounds, reviews := mock.NewRepositories()

	existing := &models.Campground{Title: "Old"}
	require.NoError(t, campgrounds.Create(ctx, existing))
	require.NoError(t, reviews.CreateForCampground(ctx, existing.ID, &models.Review{Body: "old", Rating: 1}))

	n, err := New(campgrounds, reviews, 42).Run(ctx, DefaultCount)
	require.NoError(t, err)
	assert.Equal(t, DefaultCount, n)
	assert.Equal(t, DefaultCount, campgrounds.Count())
	assert.Zero(t, reviews.Count())

	list, err := campgrounds.List(ctx)
	require.NoError(t, err)
	for _, c := range list {
		assert.NotEqual(t, "Old", c.Title)
		assert.GreaterOrEqual(t, c.Price, 10.0)
		assert.LessOrEqual(t, c.Price, 29.0)
		assert.Equal(t, Description, c.Description)
		assert.Equal(t, Image, c.Image)
		assert.Len(t, strings.Split(c.Location, ", "), 2)

		in := &models.CampgroundInput{
			Title: c.Title, Location: c.Location, Description: c.Description, Price: &c.Price, Image: c.Image,
		}
		assert.Nil(t, in.Validate(), "seeded data passes form validation")
	}
}

func TestSeederIsReproducible(t *testing.T) {
	a := New(nil, nil, 7)
	b := New(nil, nil, 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Campground(), b.Campground())
	}
}

func TestSeederTitleShape(t *testing.T) {
	c := New(nil, nil, 1).Campground()
	var descriptor string
	for _, d := range descriptors {
		if strings.HasPrefix(c.Title, d+" ") {
			descriptor = d
		}
	}
	require.NotEmpty(t, descriptor)
	assert.Contains(t, places, strings.TrimPrefix(c.Title, descriptor+" "))
}

func TestSeederRunErrors(t *testing.T) {
	ctx := context.Background()
	campgrounds, reviews := mock.NewRepositories()

	_, err := New(campgrounds, reviews, 1).Run(ctx, 0)
	assert.Error(t, err)

	campgrounds.FailWith(errors.New("store down"))
	_, err = New(campgrounds, reviews, 1).Run(ctx, 3)
	assert.ErrorContains(t, err, "store down")
}
