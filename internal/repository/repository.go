package repository

import "context"

// Entity is implemented by every domain model (via model.Base plus a
// per-type attribute map).
type Entity interface {
	EntityID() string
	Touch()
	// Attribute exposes the fields reachable through GetByAttribute and
	// Filter by their snake_case column names. Unknown names report false.
	Attribute(name string) (any, bool)
}

// Repository is the uniform storage contract shared by the in-memory and
// relational backends. Absent entities are reported as (zero, nil), never
// as an error. Each call is its own atomic unit against the store.
type Repository[E Entity] interface {
	Add(ctx context.Context, entity E) error
	Get(ctx context.Context, id string) (E, error)
	GetAll(ctx context.Context) ([]E, error)
	// Update persists an already-mutated entity and refreshes its
	// UpdatedAt. Existence checks belong to the caller.
	Update(ctx context.Context, entity E) error
	Delete(ctx context.Context, id string) (bool, error)
	// GetByAttribute returns the first entity whose named attribute equals
	// value. Duplicate matches silently return the first.
	GetByAttribute(ctx context.Context, name string, value any) (E, error)
	// Filter returns every entity whose named attribute equals value.
	Filter(ctx context.Context, name string, value any) ([]E, error)
}

// PlaceAmenityStore manages the place/amenity many-to-many association.
type PlaceAmenityStore interface {
	// Link is idempotent: linking an existing pair leaves one association.
	Link(ctx context.Context, placeID, amenityID string) error
	Unlink(ctx context.Context, placeID, amenityID string) (bool, error)
	UnlinkPlace(ctx context.Context, placeID string) error
	UnlinkAmenity(ctx context.Context, amenityID string) error
	AmenityIDs(ctx context.Context, placeID string) ([]string, error)
	PlaceIDs(ctx context.Context, amenityID string) ([]string, error)
}
