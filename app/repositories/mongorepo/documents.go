package mongorepo

import (
	"time"

	"yelpcamp/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	campgroundCollection = "campgrounds"
	reviewCollection     = "reviews"
)

type campgroundDocument struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Title       string               `bson:"title"`
	Location    string               `bson:"location"`
	Description string               `bson:"description"`
	Price       float64              `bson:"price"`
	Image       string               `bson:"image"`
	Reviews     []primitive.ObjectID `bson:"reviews"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type reviewDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Campground primitive.ObjectID `bson:"campground"`
	Body       string             `bson:"body"`
	Rating     int                `bson:"rating"`
	CreatedAt  time.Time          `bson:"created_at"`
}

// objectID parses a hex id. Anything else cannot name a stored document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := objectID(id); ok {
			out = append(out, oid)
		}
	}
	return out
}

func hexIDs(oids []primitive.ObjectID) []string {
	out := make([]string, 0, len(oids))
	for _, oid := range oids {
		out = append(out, oid.Hex())
	}
	return out
}

func toCampgroundDocument(c *models.Campground) *campgroundDocument {
	oid, _ := objectID(c.ID)
	return &campgroundDocument{
		ID:          oid,
		Title:       c.Title,
		Location:    c.Location,
		Description: c.Description,
		Price:       c.Price,
		Image:       c.Image,
		Reviews:     objectIDs(c.ReviewIDs),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (d *campgroundDocument) model() *models.Campground {
	return &models.Campground{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Location:    d.Location,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		ReviewIDs:   hexIDs(d.Reviews),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d *reviewDocument) model() *models.Review {
	return &models.Review{
		ID:           d.ID.Hex(),
		CampgroundID: d.Campground.Hex(),
		Body:         d.Body,
		Rating:       d.Rating,
		CreatedAt:    d.CreatedAt,
	}
}
