package model

import "strings"

type Amenity struct {
	Base
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{Base: newBase()}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) SetName(v string) error {
	name := strings.TrimSpace(v)
	if name == "" {
		return invalid("name cannot be empty")
	}
	if len(name) > maxNameLen {
		return invalid("name cannot exceed %d characters", maxNameLen)
	}
	a.Name = name
	return nil
}

func (a *Amenity) Attribute(name string) (any, bool) {
	switch name {
	case "name":
		return a.Name, true
	default:
		return nil, false
	}
}

// PlaceAmenity is the place/amenity association row. Membership is managed
// through repository.PlaceAmenityStore, not through a gorm relation on Place.
type PlaceAmenity struct {
	PlaceID   string `gorm:"size:36;primaryKey" json:"place_id"`
	AmenityID string `gorm:"size:36;primaryKey" json:"amenity_id"`
}

func (PlaceAmenity) TableName() string {
	return "place_amenity"
}
