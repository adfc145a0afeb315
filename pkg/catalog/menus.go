package catalog

import (
	"context"
	"strings"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
)

// MenuInput creates a menu. ID is optional; when empty the service assigns
// one.
type MenuInput struct {
	ID          string
	Title       string
	Description string
}

// MenuUpdate patches a menu. Nil fields are left untouched.
type MenuUpdate struct {
	Title       *string
	Description *string
}

func (in MenuInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return validationf("menu title is required")
	}
	return nil
}

// ListMenus returns every menu with derived counts, cache-aside.
func (s *Service) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	var menus []domain.Menu
	if s.cache.read(ctx, menusKey(), &menus) {
		return menus, nil
	}

	menus, err := s.menus.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, menusKey(), menus)
	return menus, nil
}

// GetMenu returns one menu with its nested tree and derived counts. Cache
// keys always use the canonical id spelling, never the raw request string,
// so every spelling of the same id shares one entry.
func (s *Service) GetMenu(ctx context.Context, menuID string) (*domain.Menu, error) {
	id, err := lookupID(menuID, store.ErrMenuNotFound)
	if err != nil {
		return nil, err
	}
	key := menuKey(id.String())

	var menu domain.Menu
	if s.cache.read(ctx, key, &menu) {
		return &menu, nil
	}

	record, err := s.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, key, record)
	return record, nil
}

// CreateMenu persists a new menu, caches it, and stales the list views.
func (s *Service) CreateMenu(ctx context.Context, in MenuInput) (*domain.Menu, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	id, err := suppliedID(in.ID)
	if err != nil {
		return nil, err
	}

	menu := &domain.Menu{
		Title:       in.Title,
		Description: in.Description,
	}
	menu.ID = id
	menu.EnsureID()

	if err := s.menus.Create(ctx, menu); err != nil {
		return nil, err
	}

	s.cache.write(ctx, menuKey(menu.ID.String()), menu)
	s.cache.invalidate(ctx, menuScope()...)
	return menu, nil
}

// UpdateMenu applies a partial update. The refreshed cache entry keeps the
// derived counts of the pre-update record, which the patch cannot change.
func (s *Service) UpdateMenu(ctx context.Context, menuID string, in MenuUpdate) (*domain.Menu, error) {
	id, err := lookupID(menuID, store.ErrMenuNotFound)
	if err != nil {
		return nil, err
	}

	menu, err := s.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, validationf("menu title is required")
		}
		menu.Title = *in.Title
	}
	if in.Description != nil {
		menu.Description = *in.Description
	}

	if err := s.menus.Update(ctx, menu); err != nil {
		return nil, err
	}

	s.cache.write(ctx, menuKey(id.String()), menu)
	s.cache.invalidate(ctx, menuScope()...)
	return menu, nil
}

// DeleteMenu removes a menu and, via the store cascade, every descendant
// submenu and dish. The pre-delete fetch supplies the descendant ids so
// their instance and list keys are evicted along with the menu's own.
func (s *Service) DeleteMenu(ctx context.Context, menuID string) error {
	id, err := lookupID(menuID, store.ErrMenuNotFound)
	if err != nil {
		return err
	}

	menu, err := s.menus.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.menus.Delete(ctx, id); err != nil {
		return err
	}

	canonical := id.String()
	keys := []string{menuKey(canonical), submenusKey(canonical)}
	for _, submenu := range menu.Submenus {
		subID := submenu.ID.String()
		keys = append(keys, submenuKey(subID), dishesKey(canonical, subID))
		for _, dish := range submenu.Dishes {
			keys = append(keys, dishKey(dish.ID.String()))
		}
	}
	keys = append(keys, menuScope()...)
	s.cache.invalidate(ctx, keys...)
	return nil
}
