package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hbnb/internal/model"
)

// MemoryPlaceAmenities keeps the association as an ordered pair list.
type MemoryPlaceAmenities struct {
	mu    sync.RWMutex
	pairs []model.PlaceAmenity
}

func NewMemoryPlaceAmenities() *MemoryPlaceAmenities {
	return &MemoryPlaceAmenities{}
}

func (s *MemoryPlaceAmenities) Link(_ context.Context, placeID, amenityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pairs {
		if p.PlaceID == placeID && p.AmenityID == amenityID {
			return nil
		}
	}
	s.pairs = append(s.pairs, model.PlaceAmenity{PlaceID: placeID, AmenityID: amenityID})
	return nil
}

func (s *MemoryPlaceAmenities) Unlink(_ context.Context, placeID, amenityID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pairs {
		if p.PlaceID == placeID && p.AmenityID == amenityID {
			s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryPlaceAmenities) UnlinkPlace(_ context.Context, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs = discard(s.pairs, func(p model.PlaceAmenity) bool { return p.PlaceID == placeID })
	return nil
}

func (s *MemoryPlaceAmenities) UnlinkAmenity(_ context.Context, amenityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs = discard(s.pairs, func(p model.PlaceAmenity) bool { return p.AmenityID == amenityID })
	return nil
}

func (s *MemoryPlaceAmenities) AmenityIDs(_ context.Context, placeID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for _, p := range s.pairs {
		if p.PlaceID == placeID {
			ids = append(ids, p.AmenityID)
		}
	}
	return ids, nil
}

func (s *MemoryPlaceAmenities) PlaceIDs(_ context.Context, amenityID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for _, p := range s.pairs {
		if p.AmenityID == amenityID {
			ids = append(ids, p.PlaceID)
		}
	}
	return ids, nil
}

func discard(pairs []model.PlaceAmenity, drop func(model.PlaceAmenity) bool) []model.PlaceAmenity {
	kept := pairs[:0]
	for _, p := range pairs {
		if !drop(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// GormPlaceAmenities persists the association in the place_amenity table
// with its composite primary key.
type GormPlaceAmenities struct {
	db *gorm.DB
}

func NewGormPlaceAmenities(db *gorm.DB) *GormPlaceAmenities {
	return &GormPlaceAmenities{db: db}
}

func (s *GormPlaceAmenities) Link(ctx context.Context, placeID, amenityID string) error {
	pair := model.PlaceAmenity{PlaceID: placeID, AmenityID: amenityID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&pair).Error
	if err != nil {
		return fmt.Errorf("link amenity to place failed: %w", err)
	}
	return nil
}

func (s *GormPlaceAmenities) Unlink(ctx context.Context, placeID, amenityID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("place_id = ? AND amenity_id = ?", placeID, amenityID).
		Delete(&model.PlaceAmenity{})
	if res.Error != nil {
		return false, fmt.Errorf("unlink amenity from place failed: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormPlaceAmenities) UnlinkPlace(ctx context.Context, placeID string) error {
	err := s.db.WithContext(ctx).Where("place_id = ?", placeID).Delete(&model.PlaceAmenity{}).Error
	if err != nil {
		return fmt.Errorf("unlink place associations failed: %w", err)
	}
	return nil
}

func (s *GormPlaceAmenities) UnlinkAmenity(ctx context.Context, amenityID string) error {
	err := s.db.WithContext(ctx).Where("amenity_id = ?", amenityID).Delete(&model.PlaceAmenity{}).Error
	if err != nil {
		return fmt.Errorf("unlink amenity associations failed: %w", err)
	}
	return nil
}

func (s *GormPlaceAmenities) AmenityIDs(ctx context.Context, placeID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&model.PlaceAmenity{}).
		Where("place_id = ?", placeID).
		Pluck("amenity_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list place amenity ids failed: %w", err)
	}
	return ids, nil
}

func (s *GormPlaceAmenities) PlaceIDs(ctx context.Context, amenityID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&model.PlaceAmenity{}).
		Where("amenity_id = ?", amenityID).
		Pluck("place_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list amenity place ids failed: %w", err)
	}
	return ids, nil
}
