package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb/internal/model"
	"hbnb/internal/repository"
)

func newTestFacade() *Facade {
	return NewFacade(
		repository.NewMemory[*model.User](),
		repository.NewMemory[*model.Place](),
		repository.NewMemory[*model.Review](),
		repository.NewMemory[*model.Amenity](),
		repository.NewMemoryPlaceAmenities(),
	)
}

func createUser(t *testing.T, f *Facade, email string) *model.User {
	t.Helper()
	user, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret-pass",
	})
	require.NoError(t, err)
	return user
}

func createPlace(t *testing.T, f *Facade, ownerID string) *model.Place {
	t.Helper()
	place, err := f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:     "Cozy flat",
		Price:     42.0,
		Latitude:  48.85,
		Longitude: 2.35,
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return place
}

func TestCreateUserRoundtrip(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	user := createUser(t, f, "ada@example.com")
	assert.Len(t, user.ID, 36)

	got, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.FirstName, got.FirstName)
	assert.Equal(t, user.LastName, got.LastName)
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	createUser(t, f, "A@B.com")

	_, err := f.CreateUser(ctx, CreateUserInput{
		FirstName: "Other",
		LastName:  "User",
		Email:     "a@b.com",
		Password:  "secret-pass",
	})
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestUpdateUnknownIDIsAbsent(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	user, err := f.UpdateUser(ctx, "nope", UpdateUserInput{})
	require.NoError(t, err)
	assert.Nil(t, user)

	place, err := f.UpdatePlace(ctx, "nope", UpdatePlaceInput{})
	require.NoError(t, err)
	assert.Nil(t, place)

	review, err := f.UpdateReview(ctx, "nope", UpdateReviewInput{})
	require.NoError(t, err)
	assert.Nil(t, review)

	amenity, err := f.UpdateAmenity(ctx, "nope", UpdateAmenityInput{})
	require.NoError(t, err)
	assert.Nil(t, amenity)
}

func TestDeleteSemantics(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	owner := createUser(t, f, "owner@x.com")
	place := createPlace(t, f, owner.ID)

	deleted, err := f.DeletePlace(ctx, place.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	again, err := f.DeletePlace(ctx, place.ID)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestCreatePlaceValidationBoundaries(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")

	base := CreatePlaceInput{
		Title:     "Cozy flat",
		Price:     10,
		Latitude:  0,
		Longitude: 0,
		OwnerID:   owner.ID,
	}

	zeroPrice := base
	zeroPrice.Price = 0
	_, err := f.CreatePlace(ctx, zeroPrice)
	require.ErrorIs(t, err, model.ErrValidation)

	badLat := base
	badLat.Latitude = 91
	_, err = f.CreatePlace(ctx, badLat)
	require.ErrorIs(t, err, model.ErrValidation)

	boundary := base
	boundary.Price = 0.01
	boundary.Latitude = 90
	boundary.Longitude = -180
	place, err := f.CreatePlace(ctx, boundary)
	require.NoError(t, err)
	assert.Equal(t, 0.01, place.Price)
	assert.Equal(t, 90.0, place.Latitude)
	assert.Equal(t, -180.0, place.Longitude)
}

func TestCreatePlaceUnknownOwner(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	_, err := f.CreatePlace(ctx, CreatePlaceInput{
		Title:     "Cozy flat",
		Price:     10,
		Latitude:  0,
		Longitude: 0,
		OwnerID:   "ghost",
	})
	require.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestUpdatePlaceAllowList(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	place := createPlace(t, f, owner.ID)

	newTitle := "Sunny loft"
	newPrice := 99.5
	updated, err := f.UpdatePlace(ctx, place.ID, UpdatePlaceInput{
		Title: &newTitle,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunny loft", updated.Title)
	assert.Equal(t, 99.5, updated.Price)
	assert.Equal(t, owner.ID, updated.OwnerID, "owner must be untouched")
	assert.Equal(t, place.CreatedAt, updated.CreatedAt)

	badPrice := -1.0
	_, err = f.UpdatePlace(ctx, place.ID, UpdatePlaceInput{Price: &badPrice})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestReviewRatingBoundaries(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	guest := createUser(t, f, "guest@x.com")
	place := createPlace(t, f, owner.ID)

	for _, rating := range []int{0, 6} {
		_, err := f.CreateReview(ctx, CreateReviewInput{
			Text:    "hmm",
			Rating:  rating,
			PlaceID: place.ID,
			UserID:  guest.ID,
		}, Claims{UserID: guest.ID})
		require.ErrorIs(t, err, model.ErrValidation)
	}

	review, err := f.CreateReview(ctx, CreateReviewInput{
		Text:    "lovely",
		Rating:  1,
		PlaceID: place.ID,
		UserID:  guest.ID,
	}, Claims{UserID: guest.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, review.Rating)

	other := createUser(t, f, "other@x.com")
	review, err = f.CreateReview(ctx, CreateReviewInput{
		Text:    "perfect",
		Rating:  5,
		PlaceID: place.ID,
		UserID:  other.ID,
	}, Claims{UserID: other.ID})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestSelfReviewRejectedUnlessAdmin(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	place := createPlace(t, f, owner.ID)

	input := CreateReviewInput{
		Text:    "my place is great",
		Rating:  5,
		PlaceID: place.ID,
		UserID:  owner.ID,
	}

	_, err := f.CreateReview(ctx, input, Claims{UserID: owner.ID})
	require.ErrorIs(t, err, ErrSelfReview)

	review, err := f.CreateReview(ctx, input, Claims{UserID: "admin-id", IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, review.UserID)
}

func TestReviewReferencesMustExist(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "x", Rating: 3, PlaceID: "ghost", UserID: owner.ID,
	}, Claims{UserID: owner.ID})
	require.ErrorIs(t, err, ErrPlaceNotFound)

	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "x", Rating: 3, PlaceID: place.ID, UserID: "ghost",
	}, Claims{UserID: "ghost"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddAmenityToPlaceIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	place := createPlace(t, f, owner.ID)

	amenity, err := f.CreateAmenity(ctx, CreateAmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		added, err := f.AddAmenityToPlace(ctx, place.ID, amenity.ID)
		require.NoError(t, err)
		assert.True(t, added)
	}

	amenities, err := f.GetPlaceAmenities(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, amenities, 1, "double link must leave exactly one association")
	assert.Equal(t, "Wi-Fi", amenities[0].Name)

	added, err := f.AddAmenityToPlace(ctx, "ghost", amenity.ID)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = f.AddAmenityToPlace(ctx, place.ID, "ghost")
	require.NoError(t, err)
	assert.False(t, added)

	amenities, err = f.GetPlaceAmenities(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, amenities, 1, "failed links must not create associations")
}

func TestAmenityNameConflict(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	_, err := f.CreateAmenity(ctx, CreateAmenityInput{Name: "Pool"})
	require.NoError(t, err)

	_, err = f.CreateAmenity(ctx, CreateAmenityInput{Name: "Pool"})
	require.ErrorIs(t, err, ErrAmenityExists)
}

func TestGetPlacesByAmenity(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	first := createPlace(t, f, owner.ID)
	second := createPlace(t, f, owner.ID)

	amenity, err := f.CreateAmenity(ctx, CreateAmenityInput{Name: "Parking"})
	require.NoError(t, err)

	for _, placeID := range []string{first.ID, second.ID} {
		added, err := f.AddAmenityToPlace(ctx, placeID, amenity.ID)
		require.NoError(t, err)
		require.True(t, added)
	}

	places, err := f.GetPlacesByAmenity(ctx, amenity.ID)
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	createUser(t, f, "taken@x.com")
	user := createUser(t, f, "free@x.com")

	conflicting := "Taken@X.com"
	_, err := f.UpdateUser(ctx, user.ID, UpdateUserInput{Email: &conflicting})
	require.ErrorIs(t, err, ErrEmailExists)

	same := "free@x.com"
	updated, err := f.UpdateUser(ctx, user.ID, UpdateUserInput{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "free@x.com", updated.Email)
}

func TestRejectedUserUpdateLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	createUser(t, f, "a@x.com")
	user := createUser(t, f, "b@x.com")

	newName := "NewName"
	conflicting := "a@x.com"
	_, err := f.UpdateUser(ctx, user.ID, UpdateUserInput{
		FirstName: &newName,
		Email:     &conflicting,
	})
	require.ErrorIs(t, err, ErrEmailExists)

	got, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b@x.com", got.Email, "rejected update must not change the stored email")
	assert.Equal(t, "Test", got.FirstName, "rejected update must not change any field")
}

func TestRejectedPlaceUpdateLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	place := createPlace(t, f, owner.ID)

	// title setter succeeds before the price setter fails
	newTitle := "Sunny loft"
	badPrice := -1.0
	_, err := f.UpdatePlace(ctx, place.ID, UpdatePlaceInput{
		Title: &newTitle,
		Price: &badPrice,
	})
	require.ErrorIs(t, err, model.ErrValidation)

	got, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cozy flat", got.Title)
	assert.Equal(t, 42.0, got.Price)
}

func TestDeletePlaceCascades(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()
	owner := createUser(t, f, "owner@x.com")
	guest := createUser(t, f, "guest@x.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "good", Rating: 4, PlaceID: place.ID, UserID: guest.ID,
	}, Claims{UserID: guest.ID})
	require.NoError(t, err)

	amenity, err := f.CreateAmenity(ctx, CreateAmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)
	added, err := f.AddAmenityToPlace(ctx, place.ID, amenity.ID)
	require.NoError(t, err)
	require.True(t, added)

	deleted, err := f.DeletePlace(ctx, place.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	reviews, err := f.GetReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	places, err := f.GetPlacesByAmenity(ctx, amenity.ID)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestEndToEndReviewFlow(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	owner := createUser(t, f, "a@x.com")
	place := createPlace(t, f, owner.ID)
	guest := createUser(t, f, "v@x.com")

	review, err := f.CreateReview(ctx, CreateReviewInput{
		Text:    "great location",
		Rating:  4,
		PlaceID: place.ID,
		UserID:  guest.ID,
	}, Claims{UserID: guest.ID})
	require.NoError(t, err)

	reviews, err := f.GetReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
	assert.Equal(t, 4, reviews[0].Rating)

	reviewed, err := f.HasUserReviewedPlace(ctx, guest.ID, place.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)

	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text:    "still great",
		Rating:  5,
		PlaceID: place.ID,
		UserID:  guest.ID,
	}, Claims{UserID: guest.ID})
	require.ErrorIs(t, err, ErrDuplicateReview)

	byUser, err := f.GetReviewsByUser(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, review.ID, byUser[0].ID)
}
