package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ada", "Lovelace", "Ada@Example.com", "secret-pass", false)
	require.NoError(t, err)

	assert.Len(t, user.ID, 36)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
	assert.Equal(t, "ada@example.com", user.Email, "email must be lowercased")
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret-pass", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestNewUserValidation(t *testing.T) {
	longName := strings.Repeat("a", 51)

	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
	}{
		{"empty first name", "", "Lovelace", "a@x.com", "secret-pass"},
		{"blank first name", "   ", "Lovelace", "a@x.com", "secret-pass"},
		{"long first name", longName, "Lovelace", "a@x.com", "secret-pass"},
		{"empty last name", "Ada", "", "a@x.com", "secret-pass"},
		{"empty email", "Ada", "Lovelace", "", "secret-pass"},
		{"malformed email", "Ada", "Lovelace", "not-an-email", "secret-pass"},
		{"empty password", "Ada", "Lovelace", "a@x.com", ""},
		{"long password", "Ada", "Lovelace", "a@x.com", strings.Repeat("p", 73)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.firstName, tt.lastName, tt.email, tt.password, false)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserNameTrimming(t *testing.T) {
	user, err := NewUser("  Ada  ", "  Lovelace ", "a@x.com", "secret-pass", false)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
}

func TestNewPlaceBoundaries(t *testing.T) {
	valid := func(price, lat, lon float64) error {
		_, err := NewPlace("Cozy flat", "", price, lat, lon, "owner-1")
		return err
	}

	// inclusive boundaries succeed
	require.NoError(t, valid(0.01, 90, -180))
	require.NoError(t, valid(100, -90, 180))

	// out-of-range values fail
	require.ErrorIs(t, valid(0, 0, 0), ErrValidation)
	require.ErrorIs(t, valid(-5, 0, 0), ErrValidation)
	require.ErrorIs(t, valid(10, 91, 0), ErrValidation)
	require.ErrorIs(t, valid(10, -91, 0), ErrValidation)
	require.ErrorIs(t, valid(10, 0, 181), ErrValidation)
	require.ErrorIs(t, valid(10, 0, -181), ErrValidation)
}

func TestNewPlaceTitle(t *testing.T) {
	_, err := NewPlace("", "", 10, 0, 0, "owner-1")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewPlace(strings.Repeat("a", 101), "", 10, 0, 0, "owner-1")
	require.ErrorIs(t, err, ErrValidation)
}

func TestNewReviewRating(t *testing.T) {
	for _, rating := range []int{1, 5} {
		review, err := NewReview("great stay", rating, "place-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, rating, review.Rating)
	}
	for _, rating := range []int{0, 6, -1} {
		_, err := NewReview("great stay", rating, "place-1", "user-1")
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestNewReviewText(t *testing.T) {
	_, err := NewReview("   ", 3, "place-1", "user-1")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewReview(strings.Repeat("a", 501), 3, "place-1", "user-1")
	require.ErrorIs(t, err, ErrValidation)
}

func TestNewAmenity(t *testing.T) {
	amenity, err := NewAmenity("  Wi-Fi ")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", amenity.Name)
	assert.Len(t, amenity.ID, 36)

	_, err = NewAmenity("")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewAmenity(strings.Repeat("a", 51))
	require.ErrorIs(t, err, ErrValidation)
}

func TestAttributeMaps(t *testing.T) {
	user, err := NewUser("Ada", "Lovelace", "a@x.com", "secret-pass", true)
	require.NoError(t, err)

	email, ok := user.Attribute("email")
	require.True(t, ok)
	assert.Equal(t, "a@x.com", email)

	isAdmin, ok := user.Attribute("is_admin")
	require.True(t, ok)
	assert.Equal(t, true, isAdmin)

	_, ok = user.Attribute("password_hash")
	assert.False(t, ok, "password hash must not be reachable by attribute lookup")

	review, err := NewReview("nice", 4, "place-1", "user-1")
	require.NoError(t, err)
	placeID, ok := review.Attribute("place_id")
	require.True(t, ok)
	assert.Equal(t, "place-1", placeID)
}

func TestTouchRefreshesUpdatedAt(t *testing.T) {
	amenity, err := NewAmenity("Pool")
	require.NoError(t, err)

	before := amenity.UpdatedAt
	amenity.Touch()
	assert.False(t, amenity.UpdatedAt.Before(before))
}
