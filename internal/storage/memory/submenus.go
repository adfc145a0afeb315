package memory

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/google/uuid"
)

type SubmenuRepository struct {
	store *Store
}

var _ store.SubmenuRepository = (*SubmenuRepository)(nil)

func NewSubmenuRepository(s *Store) *SubmenuRepository {
	return &SubmenuRepository{store: s}
}

func (r *SubmenuRepository) List(ctx context.Context, menuID uuid.UUID) ([]domain.Submenu, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	subs := r.store.submenusOf(menuID)
	out := make([]domain.Submenu, 0, len(subs))
	for _, sub := range subs {
		sub.Dishes = nil
		sub.DishesCount = len(r.store.dishesOf(sub.ID))
		out = append(out, sub)
	}
	return out, nil
}

func (r *SubmenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submenu, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sub, ok := r.store.submenus[id]
	if !ok {
		return nil, store.ErrSubmenuNotFound
	}
	sub.Dishes = nil
	sub.DishesCount = len(r.store.dishesOf(id))
	return &sub, nil
}

func (r *SubmenuRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.submenus[id]
	return ok, nil
}

func (r *SubmenuRepository) Create(ctx context.Context, submenu *domain.Submenu) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stamp(&submenu.RecordMeta)
	stored := *submenu
	stored.Dishes = nil
	r.store.submenus[submenu.ID] = stored
	return nil
}

func (r *SubmenuRepository) Update(ctx context.Context, submenu *domain.Submenu) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.submenus[submenu.ID]; !ok {
		return store.ErrSubmenuNotFound
	}
	stamp(&submenu.RecordMeta)
	stored := *submenu
	stored.Dishes = nil
	r.store.submenus[submenu.ID] = stored
	return nil
}

func (r *SubmenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.submenus[id]; !ok {
		return store.ErrSubmenuNotFound
	}
	for dishID, d := range r.store.dishes {
		if d.SubmenuID == id {
			delete(r.store.dishes, dishID)
		}
	}
	delete(r.store.submenus, id)
	return nil
}
