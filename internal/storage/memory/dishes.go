package memory

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/google/uuid"
)

type DishRepository struct {
	store *Store
}

var _ store.DishRepository = (*DishRepository)(nil)

func NewDishRepository(s *Store) *DishRepository {
	return &DishRepository{store: s}
}

func (r *DishRepository) List(ctx context.Context, submenuID uuid.UUID) ([]domain.Dish, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.dishesOf(submenuID), nil
}

func (r *DishRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	dish, ok := r.store.dishes[id]
	if !ok {
		return nil, store.ErrDishNotFound
	}
	return &dish, nil
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stamp(&dish.RecordMeta)
	r.store.dishes[dish.ID] = *dish
	return nil
}

func (r *DishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.dishes[dish.ID]; !ok {
		return store.ErrDishNotFound
	}
	stamp(&dish.RecordMeta)
	r.store.dishes[dish.ID] = *dish
	return nil
}

func (r *DishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.dishes[id]; !ok {
		return store.ErrDishNotFound
	}
	delete(r.store.dishes, id)
	return nil
}
