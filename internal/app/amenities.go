package app

import (
	"context"

	"hbnb/internal/model"
)

type CreateAmenityInput struct {
	Name string
}

type UpdateAmenityInput struct {
	Name *string
}

func (f *Facade) CreateAmenity(ctx context.Context, input CreateAmenityInput) (*model.Amenity, error) {
	amenity, err := model.NewAmenity(input.Name)
	if err != nil {
		return nil, err
	}

	existing, err := f.amenities.GetByAttribute(ctx, "name", amenity.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAmenityExists
	}

	if err := f.amenities.Add(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*model.Amenity, error) {
	return f.amenities.Get(ctx, id)
}

func (f *Facade) ListAmenities(ctx context.Context) ([]*model.Amenity, error) {
	return f.amenities.GetAll(ctx)
}

func (f *Facade) UpdateAmenity(ctx context.Context, id string, input UpdateAmenityInput) (*model.Amenity, error) {
	stored, err := f.amenities.Get(ctx, id)
	if err != nil || stored == nil {
		return nil, err
	}

	// Patch a copy so a rejected update never leaks into the store.
	patched := *stored
	amenity := &patched

	if input.Name != nil {
		if err := amenity.SetName(*input.Name); err != nil {
			return nil, err
		}
		other, err := f.amenities.GetByAttribute(ctx, "name", amenity.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != amenity.ID {
			return nil, ErrAmenityExists
		}
	}

	if err := f.amenities.Update(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// DeleteAmenity also clears the amenity's place associations.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	if err := f.links.UnlinkAmenity(ctx, id); err != nil {
		return false, err
	}
	return f.amenities.Delete(ctx, id)
}
