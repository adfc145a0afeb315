package memory

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/google/uuid"
)

type MenuRepository struct {
	store *Store
}

var _ store.MenuRepository = (*MenuRepository)(nil)

func NewMenuRepository(s *Store) *MenuRepository {
	return &MenuRepository{store: s}
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.Menu, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Menu, 0, len(r.store.menus))
	for _, menu := range r.store.menus {
		menu.SubmenusCount, menu.DishesCount = r.store.countsOf(menu.ID)
		menu.Submenus = nil
		out = append(out, menu)
	}
	sortByID(out, func(m domain.Menu) uuid.UUID { return m.ID })
	return out, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	menu, ok := r.store.menus[id]
	if !ok {
		return nil, store.ErrMenuNotFound
	}
	menu.SubmenusCount, menu.DishesCount = r.store.countsOf(id)
	menu.Submenus = nil
	for _, sub := range r.store.submenusOf(id) {
		sub.Dishes = nil
		for _, d := range r.store.dishesOf(sub.ID) {
			dish := d
			sub.Dishes = append(sub.Dishes, &dish)
		}
		sub.DishesCount = len(sub.Dishes)
		submenu := sub
		menu.Submenus = append(menu.Submenus, &submenu)
	}
	return &menu, nil
}

func (r *MenuRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.menus[id]
	return ok, nil
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stamp(&menu.RecordMeta)
	stored := *menu
	stored.Submenus = nil
	r.store.menus[menu.ID] = stored
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, menu *domain.Menu) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.menus[menu.ID]; !ok {
		return store.ErrMenuNotFound
	}
	stamp(&menu.RecordMeta)
	stored := *menu
	stored.Submenus = nil
	r.store.menus[menu.ID] = stored
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.menus[id]; !ok {
		return store.ErrMenuNotFound
	}
	for subID, sub := range r.store.submenus {
		if sub.MenuID != id {
			continue
		}
		for dishID, d := range r.store.dishes {
			if d.SubmenuID == subID {
				delete(r.store.dishes, dishID)
			}
		}
		delete(r.store.submenus, subID)
	}
	delete(r.store.menus, id)
	return nil
}
