package memory

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/google/uuid"
)

type PreviewRepository struct {
	store *Store
}

var _ store.PreviewRepository = (*PreviewRepository)(nil)

func NewPreviewRepository(s *Store) *PreviewRepository {
	return &PreviewRepository{store: s}
}

func (r *PreviewRepository) Preview(ctx context.Context) ([]domain.Menu, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Menu, 0, len(r.store.menus))
	for _, menu := range r.store.menus {
		menu.Submenus = nil
		dishes := 0
		for _, sub := range r.store.submenusOf(menu.ID) {
			sub.Dishes = nil
			for _, d := range r.store.dishesOf(sub.ID) {
				dish := d
				sub.Dishes = append(sub.Dishes, &dish)
			}
			sub.DishesCount = len(sub.Dishes)
			dishes += len(sub.Dishes)
			submenu := sub
			menu.Submenus = append(menu.Submenus, &submenu)
		}
		menu.SubmenusCount = len(menu.Submenus)
		menu.DishesCount = dishes
		out = append(out, menu)
	}
	sortByID(out, func(m domain.Menu) uuid.UUID { return m.ID })
	return out, nil
}
