package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"yelpcamp/app/models"
	"yelpcamp/app/repositories"
)

// state is shared by the campground and review mocks so that cascading
// deletes and reference updates behave like the real store.
type state struct {
	campgrounds map[string]*models.Campground
	order       []string
	reviews     map[string]*models.Review
	nextID      int
	failWith    error
	mutex       sync.RWMutex
}

type CampgroundRepository struct {
	*state
}

type ReviewRepository struct {
	*state
}

// NewRepositories returns a campground and review mock backed by the same data.
func NewRepositories() (*CampgroundRepository, *ReviewRepository) {
	s := &state{
		campgrounds: make(map[string]*models.Campground),
		reviews:     make(map[string]*models.Review),
		nextID:      1,
	}
	return &CampgroundRepository{s}, &ReviewRepository{s}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *state) FailWith(err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failWith = err
}

func (s *state) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.campgrounds = make(map[string]*models.Campground)
	s.order = nil
	s.reviews = make(map[string]*models.Review)
	s.nextID = 1
}

func (s *state) newID() string {
	id := fmt.Sprintf("%024d", s.nextID)
	s.nextID++
	return id
}

func copyCampground(c *models.Campground) *models.Campground {
	out := *c
	out.ReviewIDs = append([]string{}, c.ReviewIDs...)
	out.Reviews = nil
	return &out
}

// CampgroundRepository implementation
func (m *CampgroundRepository) Create(ctx context.Context, campground *models.Campground) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return m.failWith
	}

	campground.ID = m.newID()
	campground.BeforeCreate()
	m.campgrounds[campground.ID] = copyCampground(campground)
	m.order = append(m.order, campground.ID)
	return nil
}

func (m *CampgroundRepository) GetByID(ctx context.Context, id string) (*models.Campground, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	campground, exists := m.campgrounds[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return copyCampground(campground), nil
}

func (m *CampgroundRepository) List(ctx context.Context) ([]*models.Campground, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	campgrounds := []*models.Campground{}
	for _, id := range m.order {
		if campground, exists := m.campgrounds[id]; exists {
			campgrounds = append(campgrounds, copyCampground(campground))
		}
	}
	return campgrounds, nil
}

func (m *CampgroundRepository) Update(ctx context.Context, campground *models.Campground) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return m.failWith
	}

	stored, exists := m.campgrounds[campground.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	stored.Title = campground.Title
	stored.Location = campground.Location
	stored.Description = campground.Description
	stored.Price = campground.Price
	stored.Image = campground.Image
	stored.UpdatedAt = time.Now()
	*campground = *copyCampground(stored)
	return nil
}

func (m *CampgroundRepository) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return m.failWith
	}

	campground, exists := m.campgrounds[id]
	if !exists {
		return repositories.ErrNotFound
	}
	for _, reviewID := range campground.ReviewIDs {
		delete(m.reviews, reviewID)
	}
	delete(m.campgrounds, id)
	return nil
}

func (m *CampgroundRepository) DeleteAll(ctx context.Context) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}

	n := len(m.campgrounds)
	m.campgrounds = make(map[string]*models.Campground)
	m.order = nil
	return n, nil
}

// Count reports how many campgrounds are stored.
func (m *CampgroundRepository) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.campgrounds)
}

// ReviewRepository implementation
func (m *ReviewRepository) CreateForCampground(ctx context.Context, campgroundID string, review *models.Review) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return m.failWith
	}

	campground, exists := m.campgrounds[campgroundID]
	if !exists {
		return repositories.ErrNotFound
	}
	review.ID = m.newID()
	review.BeforeCreate()
	if err := campground.AddReview(review); err != nil {
		return err
	}
	stored := *review
	m.reviews[review.ID] = &stored
	return nil
}

func (m *ReviewRepository) ListByIDs(ctx context.Context, ids []string) ([]*models.Review, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	reviews := make([]*models.Review, 0, len(ids))
	for _, id := range ids {
		if review, exists := m.reviews[id]; exists {
			out := *review
			reviews = append(reviews, &out)
		}
	}
	return reviews, nil
}

func (m *ReviewRepository) DeleteFromCampground(ctx context.Context, campgroundID, reviewID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return m.failWith
	}

	campground, exists := m.campgrounds[campgroundID]
	if !exists {
		return repositories.ErrNotFound
	}
	if err := campground.RemoveReview(reviewID); err != nil {
		return repositories.ErrNotFound
	}
	delete(m.reviews, reviewID)
	return nil
}

func (m *ReviewRepository) DeleteAll(ctx context.Context) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}

	n := len(m.reviews)
	m.reviews = make(map[string]*models.Review)
	return n, nil
}

// Count reports how many reviews are stored.
func (m *ReviewRepository) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.reviews)
}

var (
	_ repositories.CampgroundRepository = (*CampgroundRepository)(nil)
	_ repositories.ReviewRepository     = (*ReviewRepository)(nil)
)
