package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrValidation marks all field validation failures. The message carried by
// the wrapping error is safe to return to API clients.
var ErrValidation = errors.New("validation failed")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Base carries the identity and lifecycle fields shared by every entity.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *Base) EntityID() string {
	return b.ID
}

// Touch refreshes UpdatedAt. Repositories call it on every mutation.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
