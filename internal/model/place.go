package model

import "strings"

type Place struct {
	Base
	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`
	OwnerID     string  `gorm:"size:36;not null;index" json:"owner_id"`
}

func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	p := &Place{Base: newBase(), OwnerID: ownerID}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Place) SetTitle(v string) error {
	title := strings.TrimSpace(v)
	if title == "" {
		return invalid("title cannot be empty")
	}
	if len(title) > 100 {
		return invalid("title cannot exceed 100 characters")
	}
	p.Title = title
	return nil
}

func (p *Place) SetDescription(v string) error {
	if len(v) > 500 {
		return invalid("description cannot exceed 500 characters")
	}
	p.Description = v
	return nil
}

func (p *Place) SetPrice(v float64) error {
	if v <= 0 {
		return invalid("price must be greater than 0")
	}
	p.Price = v
	return nil
}

func (p *Place) SetLatitude(v float64) error {
	if v < -90 || v > 90 {
		return invalid("latitude must be between -90 and 90")
	}
	p.Latitude = v
	return nil
}

func (p *Place) SetLongitude(v float64) error {
	if v < -180 || v > 180 {
		return invalid("longitude must be between -180 and 180")
	}
	p.Longitude = v
	return nil
}

func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "title":
		return p.Title, true
	case "price":
		return p.Price, true
	case "owner_id":
		return p.OwnerID, true
	default:
		return nil, false
	}
}
