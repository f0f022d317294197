package repository

import (
	"context"
	"sync"
)

// Memory is the dictionary-backed Repository. Iteration follows insertion
// order. The mutex guards the maps themselves; lost updates between
// concurrent requests are out of scope, matching the relational backend.
type Memory[E Entity] struct {
	mu    sync.RWMutex
	items map[string]E
	order []string
}

func NewMemory[E Entity]() *Memory[E] {
	return &Memory[E]{items: make(map[string]E)}
}

func (m *Memory[E]) Add(_ context.Context, entity E) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(entity)
	return nil
}

func (m *Memory[E]) Get(_ context.Context, id string) (E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entity, ok := m.items[id]
	if !ok {
		var zero E
		return zero, nil
	}
	return entity, nil
}

func (m *Memory[E]) GetAll(_ context.Context) ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]E, 0, len(m.order))
	for _, id := range m.order {
		all = append(all, m.items[id])
	}
	return all, nil
}

func (m *Memory[E]) Update(_ context.Context, entity E) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entity.Touch()
	m.store(entity)
	return nil
}

func (m *Memory[E]) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	for i, stored := range m.order {
		if stored == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *Memory[E]) GetByAttribute(_ context.Context, name string, value any) (E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		entity := m.items[id]
		if got, ok := entity.Attribute(name); ok && got == value {
			return entity, nil
		}
	}
	var zero E
	return zero, nil
}

func (m *Memory[E]) Filter(_ context.Context, name string, value any) ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []E
	for _, id := range m.order {
		entity := m.items[id]
		if got, ok := entity.Attribute(name); ok && got == value {
			matched = append(matched, entity)
		}
	}
	return matched, nil
}

func (m *Memory[E]) store(entity E) {
	id := entity.EntityID()
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	m.items[id] = entity
}
