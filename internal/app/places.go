package app

import (
	"context"

	"hbnb/internal/model"
)

type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
}

// UpdatePlaceInput is the explicit allow-list of mutable place fields.
// OwnerID is deliberately absent: ownership never changes.
type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// PlaceDetails bundles a place with its owner, amenities and reviews.
type PlaceDetails struct {
	Place     *model.Place     `json:"place"`
	Owner     *model.User      `json:"owner"`
	Amenities []*model.Amenity `json:"amenities"`
	Reviews   []*model.Review  `json:"reviews"`
}

func (f *Facade) CreatePlace(ctx context.Context, input CreatePlaceInput) (*model.Place, error) {
	owner, err := f.users.Get(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	place, err := model.NewPlace(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, owner.ID)
	if err != nil {
		return nil, err
	}
	if err := f.places.Add(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	return f.places.Get(ctx, id)
}

func (f *Facade) GetPlaceWithRelated(ctx context.Context, id string) (*PlaceDetails, error) {
	place, err := f.places.Get(ctx, id)
	if err != nil || place == nil {
		return nil, err
	}

	owner, err := f.users.Get(ctx, place.OwnerID)
	if err != nil {
		return nil, err
	}
	amenities, err := f.GetPlaceAmenities(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := f.GetReviewsByPlace(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PlaceDetails{
		Place:     place,
		Owner:     owner,
		Amenities: amenities,
		Reviews:   reviews,
	}, nil
}

func (f *Facade) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	return f.places.GetAll(ctx)
}

func (f *Facade) GetPlacesByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	return f.places.Filter(ctx, "owner_id", ownerID)
}

func (f *Facade) UpdatePlace(ctx context.Context, id string, input UpdatePlaceInput) (*model.Place, error) {
	stored, err := f.places.Get(ctx, id)
	if err != nil || stored == nil {
		return nil, err
	}

	// Patch a copy so a rejected update never leaks into the store.
	patched := *stored
	place := &patched

	if input.Title != nil {
		if err := place.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := place.SetDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Price != nil {
		if err := place.SetPrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if input.Latitude != nil {
		if err := place.SetLatitude(*input.Latitude); err != nil {
			return nil, err
		}
	}
	if input.Longitude != nil {
		if err := place.SetLongitude(*input.Longitude); err != nil {
			return nil, err
		}
	}

	if err := f.places.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// DeletePlace removes the place together with its reviews and amenity
// associations, keeping the store free of dangling references.
func (f *Facade) DeletePlace(ctx context.Context, id string) (bool, error) {
	reviews, err := f.reviews.Filter(ctx, "place_id", id)
	if err != nil {
		return false, err
	}
	for _, review := range reviews {
		if _, err := f.reviews.Delete(ctx, review.ID); err != nil {
			return false, err
		}
	}
	if err := f.links.UnlinkPlace(ctx, id); err != nil {
		return false, err
	}
	return f.places.Delete(ctx, id)
}

// AddAmenityToPlace is idempotent; it reports false when either id is
// unknown and creates no association in that case.
func (f *Facade) AddAmenityToPlace(ctx context.Context, placeID, amenityID string) (bool, error) {
	ok, err := f.placeAndAmenityExist(ctx, placeID, amenityID)
	if err != nil || !ok {
		return false, err
	}
	if err := f.links.Link(ctx, placeID, amenityID); err != nil {
		return false, err
	}
	return true, nil
}

func (f *Facade) RemoveAmenityFromPlace(ctx context.Context, placeID, amenityID string) (bool, error) {
	return f.links.Unlink(ctx, placeID, amenityID)
}

func (f *Facade) GetPlaceAmenities(ctx context.Context, placeID string) ([]*model.Amenity, error) {
	ids, err := f.links.AmenityIDs(ctx, placeID)
	if err != nil {
		return nil, err
	}
	amenities := make([]*model.Amenity, 0, len(ids))
	for _, id := range ids {
		amenity, err := f.amenities.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if amenity != nil {
			amenities = append(amenities, amenity)
		}
	}
	return amenities, nil
}

func (f *Facade) GetPlacesByAmenity(ctx context.Context, amenityID string) ([]*model.Place, error) {
	ids, err := f.links.PlaceIDs(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	places := make([]*model.Place, 0, len(ids))
	for _, id := range ids {
		place, err := f.places.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if place != nil {
			places = append(places, place)
		}
	}
	return places, nil
}

func (f *Facade) placeAndAmenityExist(ctx context.Context, placeID, amenityID string) (bool, error) {
	place, err := f.places.Get(ctx, placeID)
	if err != nil {
		return false, err
	}
	if place == nil {
		return false, nil
	}
	amenity, err := f.amenities.Get(ctx, amenityID)
	if err != nil {
		return false, err
	}
	return amenity != nil, nil
}
