package app

import (
	"context"

	"hbnb/internal/model"
)

type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// UpdateReviewInput is the explicit allow-list of mutable review fields.
// The author and place of a review never change.
type UpdateReviewInput struct {
	Text   *string
	Rating *int
}

// CreateReview enforces the review rules for every caller: both referenced
// entities must exist, an owner may not review their own place unless the
// acting user is an admin, and a user may review a place at most once.
func (f *Facade) CreateReview(ctx context.Context, input CreateReviewInput, actor Claims) (*model.Review, error) {
	place, err := f.places.Get(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	user, err := f.users.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.UserID == place.OwnerID && !actor.IsAdmin {
		return nil, ErrSelfReview
	}

	reviewed, err := f.HasUserReviewedPlace(ctx, input.UserID, input.PlaceID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrDuplicateReview
	}

	review, err := model.NewReview(input.Text, input.Rating, place.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if err := f.reviews.Add(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*model.Review, error) {
	return f.reviews.Get(ctx, id)
}

func (f *Facade) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return f.reviews.GetAll(ctx)
}

func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	return f.reviews.Filter(ctx, "place_id", placeID)
}

func (f *Facade) GetReviewsByUser(ctx context.Context, userID string) ([]*model.Review, error) {
	return f.reviews.Filter(ctx, "user_id", userID)
}

func (f *Facade) HasUserReviewedPlace(ctx context.Context, userID, placeID string) (bool, error) {
	reviews, err := f.reviews.Filter(ctx, "place_id", placeID)
	if err != nil {
		return false, err
	}
	for _, review := range reviews {
		if review.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *Facade) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (*model.Review, error) {
	stored, err := f.reviews.Get(ctx, id)
	if err != nil || stored == nil {
		return nil, err
	}

	// Patch a copy so a rejected update never leaks into the store.
	patched := *stored
	review := &patched

	if input.Text != nil {
		if err := review.SetText(*input.Text); err != nil {
			return nil, err
		}
	}
	if input.Rating != nil {
		if err := review.SetRating(*input.Rating); err != nil {
			return nil, err
		}
	}

	if err := f.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	return f.reviews.Delete(ctx, id)
}
