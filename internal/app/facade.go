package app

import (
	"errors"

	"hbnb/internal/model"
	"hbnb/internal/repository"
)

var (
	ErrEmailExists     = errors.New("email already registered")
	ErrAmenityExists   = errors.New("amenity already exists")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPlaceNotFound   = errors.New("place not found")
	ErrSelfReview      = errors.New("you cannot review your own place")
	ErrDuplicateReview = errors.New("you have already reviewed this place")
)

// Claims are the authenticated caller's attributes, trusted verbatim.
type Claims struct {
	UserID  string
	IsAdmin bool
}

// Facade aggregates the four entity repositories and the place/amenity
// association store behind one set of domain operations. Business rules
// (duplicate email, referential existence, self-review, one review per
// user per place) live here so they hold for every caller.
type Facade struct {
	users     repository.Repository[*model.User]
	places    repository.Repository[*model.Place]
	reviews   repository.Repository[*model.Review]
	amenities repository.Repository[*model.Amenity]
	links     repository.PlaceAmenityStore
}

func NewFacade(
	users repository.Repository[*model.User],
	places repository.Repository[*model.Place],
	reviews repository.Repository[*model.Review],
	amenities repository.Repository[*model.Amenity],
	links repository.PlaceAmenityStore,
) *Facade {
	return &Facade{
		users:     users,
		places:    places,
		reviews:   reviews,
		amenities: amenities,
		links:     links,
	}
}
