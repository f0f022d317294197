package model

import "strings"

type Review struct {
	Base
	Text    string `gorm:"size:500;not null" json:"text"`
	Rating  int    `gorm:"not null" json:"rating"`
	PlaceID string `gorm:"size:36;not null;index" json:"place_id"`
	UserID  string `gorm:"size:36;not null;index" json:"user_id"`
}

func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	r := &Review{Base: newBase(), PlaceID: placeID, UserID: userID}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) SetText(v string) error {
	text := strings.TrimSpace(v)
	if text == "" {
		return invalid("review text cannot be empty")
	}
	if len(text) > 500 {
		return invalid("review text cannot exceed 500 characters")
	}
	r.Text = text
	return nil
}

func (r *Review) SetRating(v int) error {
	if v < 1 || v > 5 {
		return invalid("rating must be between 1 and 5")
	}
	r.Rating = v
	return nil
}

func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "text":
		return r.Text, true
	case "rating":
		return r.Rating, true
	case "place_id":
		return r.PlaceID, true
	case "user_id":
		return r.UserID, true
	default:
		return nil, false
	}
}
