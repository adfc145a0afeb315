package catalog

import (
	"context"
	"strings"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
)

// SubmenuInput creates a submenu under an existing menu.
type SubmenuInput struct {
	ID          string
	Title       string
	Description string
}

// SubmenuUpdate patches a submenu. Nil fields are left untouched.
type SubmenuUpdate struct {
	Title       *string
	Description *string
}

func (in SubmenuInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return validationf("submenu title is required")
	}
	return nil
}

// ListSubmenus returns the submenus of one menu with derived dish counts.
func (s *Service) ListSubmenus(ctx context.Context, menuID string) ([]domain.Submenu, error) {
	mID, err := s.scopeMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	key := submenusKey(mID.String())

	var submenus []domain.Submenu
	if s.cache.read(ctx, key, &submenus) {
		return submenus, nil
	}

	submenus, err = s.submenus.List(ctx, mID)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, key, submenus)
	return submenus, nil
}

// GetSubmenu returns one submenu with its dishes and derived dish count.
func (s *Service) GetSubmenu(ctx context.Context, menuID, submenuID string) (*domain.Submenu, error) {
	if _, err := s.scopeMenu(ctx, menuID); err != nil {
		return nil, err
	}
	id, err := lookupID(submenuID, store.ErrSubmenuNotFound)
	if err != nil {
		return nil, err
	}
	key := submenuKey(id.String())

	var submenu domain.Submenu
	if s.cache.read(ctx, key, &submenu) {
		return &submenu, nil
	}

	record, err := s.submenus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, key, record)
	return record, nil
}

// CreateSubmenu persists a new submenu under menuID and stales every
// ancestor view that embeds a submenu count.
func (s *Service) CreateSubmenu(ctx context.Context, menuID string, in SubmenuInput) (*domain.Submenu, error) {
	mID, err := s.scopeMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	id, err := suppliedID(in.ID)
	if err != nil {
		return nil, err
	}

	submenu := &domain.Submenu{
		Title:       in.Title,
		Description: in.Description,
		MenuID:      mID,
	}
	submenu.ID = id
	submenu.EnsureID()

	if err := s.submenus.Create(ctx, submenu); err != nil {
		return nil, err
	}

	s.cache.write(ctx, submenuKey(submenu.ID.String()), submenu)
	s.cache.invalidate(ctx, submenuScope(mID.String())...)
	return submenu, nil
}

// UpdateSubmenu applies a partial update.
func (s *Service) UpdateSubmenu(ctx context.Context, menuID, submenuID string, in SubmenuUpdate) (*domain.Submenu, error) {
	mID, err := s.scopeMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	id, err := lookupID(submenuID, store.ErrSubmenuNotFound)
	if err != nil {
		return nil, err
	}

	submenu, err := s.submenus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, validationf("submenu title is required")
		}
		submenu.Title = *in.Title
	}
	if in.Description != nil {
		submenu.Description = *in.Description
	}

	if err := s.submenus.Update(ctx, submenu); err != nil {
		return nil, err
	}

	s.cache.write(ctx, submenuKey(id.String()), submenu)
	s.cache.invalidate(ctx, submenuScope(mID.String())...)
	return submenu, nil
}

// DeleteSubmenu removes a submenu and, via the store cascade, its dishes.
// The pre-delete fetch supplies the dish ids so their instance keys and the
// dish list key are evicted along with the submenu's own.
func (s *Service) DeleteSubmenu(ctx context.Context, menuID, submenuID string) error {
	mID, err := s.scopeMenu(ctx, menuID)
	if err != nil {
		return err
	}
	id, err := lookupID(submenuID, store.ErrSubmenuNotFound)
	if err != nil {
		return err
	}

	submenu, err := s.submenus.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.submenus.Delete(ctx, id); err != nil {
		return err
	}

	canonical := id.String()
	keys := []string{submenuKey(canonical), dishesKey(mID.String(), canonical)}
	for _, dish := range submenu.Dishes {
		keys = append(keys, dishKey(dish.ID.String()))
	}
	keys = append(keys, submenuScope(mID.String())...)
	s.cache.invalidate(ctx, keys...)
	return nil
}
