package catalog

import (
	"context"
	"strings"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
)

// DishInput creates a dish under an existing submenu. Discount is a whole
// percentage in [0, 100).
type DishInput struct {
	ID          string
	Title       string
	Description string
	Price       domain.Price
	Discount    int
}

// DishUpdate patches a dish. Nil fields are left untouched.
type DishUpdate struct {
	Title       *string
	Description *string
	Price       *domain.Price
	Discount    *int
}

func (in DishInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return validationf("dish title is required")
	}
	if in.Price.IsNegative() {
		return validationf("dish price must not be negative")
	}
	if !domain.ValidDiscount(in.Discount) {
		return validationf("dish discount must be in [0, 100)")
	}
	return nil
}

// ListDishes returns the dishes of one submenu with discounts applied to
// the served price.
func (s *Service) ListDishes(ctx context.Context, menuID, submenuID string) ([]domain.Dish, error) {
	mID, sID, err := s.scopeSubmenu(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	key := dishesKey(mID.String(), sID.String())

	var dishes []domain.Dish
	if s.cache.read(ctx, key, &dishes) {
		return dishes, nil
	}

	dishes, err = s.dishes.List(ctx, sID)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, key, dishes)
	return dishes, nil
}

// GetDish returns one dish.
func (s *Service) GetDish(ctx context.Context, menuID, submenuID, dishID string) (*domain.Dish, error) {
	if _, _, err := s.scopeSubmenu(ctx, menuID, submenuID); err != nil {
		return nil, err
	}
	id, err := lookupID(dishID, store.ErrDishNotFound)
	if err != nil {
		return nil, err
	}
	key := dishKey(id.String())

	var dish domain.Dish
	if s.cache.read(ctx, key, &dish) {
		return &dish, nil
	}

	record, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.write(ctx, key, record)
	return record, nil
}

// CreateDish persists a new dish under submenuID and stales every ancestor
// view that embeds a dish count.
func (s *Service) CreateDish(ctx context.Context, menuID, submenuID string, in DishInput) (*domain.Dish, error) {
	mID, sID, err := s.scopeSubmenu(ctx, menuID, submenuID)
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

	dish := &domain.Dish{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Discount:    in.Discount,
		SubmenuID:   sID,
	}
	dish.ID = id
	dish.EnsureID()

	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, err
	}

	s.cache.write(ctx, dishKey(dish.ID.String()), dish)
	s.cache.invalidate(ctx, dishScope(mID.String(), sID.String())...)
	return dish, nil
}

// UpdateDish applies a partial update.
func (s *Service) UpdateDish(ctx context.Context, menuID, submenuID, dishID string, in DishUpdate) (*domain.Dish, error) {
	mID, sID, err := s.scopeSubmenu(ctx, menuID, submenuID)
	if err != nil {
		return nil, err
	}
	id, err := lookupID(dishID, store.ErrDishNotFound)
	if err != nil {
		return nil, err
	}

	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, validationf("dish title is required")
		}
		dish.Title = *in.Title
	}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, validationf("dish price must not be negative")
		}
		dish.Price = *in.Price
	}
	if in.Discount != nil {
		if !domain.ValidDiscount(*in.Discount) {
			return nil, validationf("dish discount must be in [0, 100)")
		}
		dish.Discount = *in.Discount
	}

	if err := s.dishes.Update(ctx, dish); err != nil {
		return nil, err
	}

	s.cache.write(ctx, dishKey(id.String()), dish)
	s.cache.invalidate(ctx, dishScope(mID.String(), sID.String())...)
	return dish, nil
}

// DeleteDish removes a single dish.
func (s *Service) DeleteDish(ctx context.Context, menuID, submenuID, dishID string) error {
	mID, sID, err := s.scopeSubmenu(ctx, menuID, submenuID)
	if err != nil {
		return err
	}
	id, err := lookupID(dishID, store.ErrDishNotFound)
	if err != nil {
		return err
	}

	if err := s.dishes.Delete(ctx, id); err != nil {
		return err
	}

	keys := append([]string{dishKey(id.String())}, dishScope(mID.String(), sID.String())...)
	s.cache.invalidate(ctx, keys...)
	return nil
}
