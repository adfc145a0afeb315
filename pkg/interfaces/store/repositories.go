package store

import (
	"context"
	"errors"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = errors.New("store: not found")

// NotFoundError carries the entity name so transports can report the most
// specific missing level of the hierarchy.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// Is lets errors.Is(err, ErrNotFound) match any entity-specific miss.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Entity-specific misses, checked in hierarchy order: menu before submenu
// before dish.
var (
	ErrMenuNotFound    = &NotFoundError{Entity: "menu"}
	ErrSubmenuNotFound = &NotFoundError{Entity: "submenu"}
	ErrDishNotFound    = &NotFoundError{Entity: "dish"}
)

// MenuRepository reads and writes menus. List and GetByID annotate results
// with derived submenu/dish counts; GetByID eager-loads the nested tree.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.Menu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, menu *domain.Menu) error
	Update(ctx context.Context, menu *domain.Menu) error
	// Delete removes the menu and every descendant submenu and dish.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmenuRepository reads and writes submenus scoped to a parent menu.
type SubmenuRepository interface {
	List(ctx context.Context, menuID uuid.UUID) ([]domain.Submenu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submenu, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, submenu *domain.Submenu) error
	Update(ctx context.Context, submenu *domain.Submenu) error
	// Delete removes the submenu and every dish it owns.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DishRepository reads and writes dishes scoped to a parent submenu.
type DishRepository interface {
	List(ctx context.Context, submenuID uuid.UUID) ([]domain.Dish, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	Create(ctx context.Context, dish *domain.Dish) error
	Update(ctx context.Context, dish *domain.Dish) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PreviewRepository materializes the whole catalog tree in one traversal,
// ordered by menu identifier.
type PreviewRepository interface {
	Preview(ctx context.Context) ([]domain.Menu, error)
}
