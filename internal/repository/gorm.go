package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type pointerTo[T any] interface {
	Entity
	*T
}

// Gorm is the relational Repository. Every mutation is committed
// synchronously by its own statement; there are no transaction boundaries
// spanning repository calls.
type Gorm[T any, PE pointerTo[T]] struct {
	db *gorm.DB
}

func NewGorm[T any, PE pointerTo[T]](db *gorm.DB) *Gorm[T, PE] {
	return &Gorm[T, PE]{db: db}
}

func (r *Gorm[T, PE]) Add(ctx context.Context, entity PE) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create %T failed: %w", entity, err)
	}
	return nil
}

func (r *Gorm[T, PE]) Get(ctx context.Context, id string) (PE, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		var zero PE
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("query %T by id failed: %w", &entity, err)
	}
	return PE(&entity), nil
}

func (r *Gorm[T, PE]) GetAll(ctx context.Context) ([]PE, error) {
	var items []T
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %T failed: %w", new(T), err)
	}
	return pointers[T, PE](items), nil
}

func (r *Gorm[T, PE]) Update(ctx context.Context, entity PE) error {
	entity.Touch()
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update %T failed: %w", entity, err)
	}
	return nil
}

func (r *Gorm[T, PE]) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete %T failed: %w", new(T), res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *Gorm[T, PE]) GetByAttribute(ctx context.Context, name string, value any) (PE, error) {
	var zero PE
	if !r.knownAttribute(name) {
		return zero, nil
	}
	var entity T
	if err := r.db.WithContext(ctx).Where(name+" = ?", value).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("query %T by %s failed: %w", &entity, name, err)
	}
	return PE(&entity), nil
}

func (r *Gorm[T, PE]) Filter(ctx context.Context, name string, value any) ([]PE, error) {
	if !r.knownAttribute(name) {
		return nil, nil
	}
	var items []T
	if err := r.db.WithContext(ctx).Where(name+" = ?", value).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("filter %T by %s failed: %w", new(T), name, err)
	}
	return pointers[T, PE](items), nil
}

// knownAttribute mirrors the in-memory backend: unknown attribute names
// yield absent rather than a SQL error. Attribute names double as column
// names, so this also keeps arbitrary strings out of the query.
func (r *Gorm[T, PE]) knownAttribute(name string) bool {
	var entity T
	_, ok := PE(&entity).Attribute(name)
	return ok
}

func pointers[T any, PE pointerTo[T]](items []T) []PE {
	out := make([]PE, 0, len(items))
	for i := range items {
		out = append(out, PE(&items[i]))
	}
	return out
}
