package app

import (
	"context"
	"strings"

	"hbnb/internal/model"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UpdateUserInput is the explicit allow-list of mutable user fields.
// Nil means "leave unchanged".
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

func (f *Facade) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	user, err := model.NewUser(input.FirstName, input.LastName, input.Email, input.Password, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	existing, err := f.users.GetByAttribute(ctx, "email", user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	if err := f.users.Add(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*model.User, error) {
	return f.users.Get(ctx, id)
}

// GetUserByEmail lowercases its argument so lookups match the normalized
// stored form.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.users.GetByAttribute(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (f *Facade) ListUsers(ctx context.Context) ([]*model.User, error) {
	return f.users.GetAll(ctx)
}

func (f *Facade) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*model.User, error) {
	stored, err := f.users.Get(ctx, id)
	if err != nil || stored == nil {
		return nil, err
	}

	// Patch a copy so a rejected update never leaks into the store. The
	// memory backend hands out its live entity.
	patched := *stored
	user := &patched

	if input.FirstName != nil {
		if err := user.SetFirstName(*input.FirstName); err != nil {
			return nil, err
		}
	}
	if input.LastName != nil {
		if err := user.SetLastName(*input.LastName); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := user.SetEmail(*input.Email); err != nil {
			return nil, err
		}
		other, err := f.users.GetByAttribute(ctx, "email", user.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, ErrEmailExists
		}
	}
	if input.Password != nil {
		if err := user.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	if err := f.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Facade) DeleteUser(ctx context.Context, id string) (bool, error) {
	return f.users.Delete(ctx, id)
}
