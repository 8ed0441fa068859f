// Package seed fills the store with randomly generated demo campgrounds.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
	"yelpcamp/logging"
	"yelpcamp/metrics"
)

const (
	// DefaultCount is how many campgrounds a run inserts unless told otherwise.
	DefaultCount = 50

	Description = "Lorem ipsum dolor sit amet consectetur adipisicing elit. Doloribus animi delectus unde omnis iure repellat reprehenderit blanditiis veritatis recusandae nesciunt est distinctio mollitia, eos voluptatum exercitationem natus nostrum. Minima, molestiae."
	Image       = "https://source.unsplash.com/collection/483251"
)

// Seeder clears the store and inserts random campgrounds.
type Seeder struct {
	campgrounds repositories.CampgroundRepository
	reviews     repositories.ReviewRepository
	rng         *rand.Rand
}

// New creates a Seeder. A zero seed draws a random one, any other value makes
// the generated data reproducible.
func New(campgrounds repositories.CampgroundRepository, reviews repositories.ReviewRepository, seed uint64) *Seeder {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Seeder{
		campgrounds: campgrounds,
		reviews:     reviews,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Run deletes every review and campground, then inserts count campgrounds.
// It returns how many were inserted.
func (s *Seeder) Run(ctx context.Context, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("seed count must be positive, got %d", count)
	}
	start := time.Now()

	reviews, err := s.reviews.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear reviews: %w", err)
	}
	campgrounds, err := s.campgrounds.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear campgrounds: %w", err)
	}
	logging.Info().
		Int("campgrounds", campgrounds).
		Int("reviews", reviews).
		Msg("Deleted all campgrounds and reviews")

	for i := 0; i < count; i++ {
		if err := s.campgrounds.Create(ctx, s.Campground()); err != nil {
			return i, fmt.Errorf("failed to insert campground %d: %w", i+1, err)
		}
		metrics.CampgroundsSeeded.Inc()
	}

	logging.Info().
		Int("count", count).
		Dur("duration", time.Since(start)).
		Msg("Seeded campgrounds")
	return count, nil
}

// Campground builds one random, unsaved campground.
func (s *Seeder) Campground() *models.Campground {
	city := cities[s.rng.IntN(len(cities))]
	return &models.Campground{
		Title:       fmt.Sprintf("%s %s", sample(s.rng, descriptors), sample(s.rng, places)),
		Location:    fmt.Sprintf("%s, %s", city.City, city.State),
		Description: Description,
		Price:       float64(s.rng.IntN(20) + 10),
		Image:       Image,
	}
}

func sample(rng *rand.Rand, items []string) string {
	return items[rng.IntN(len(items))]
}
