package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/goliatone/go-catalog/pkg/storage"
	"github.com/google/uuid"
)

// Service orchestrates persistence and cache accessors for every catalog
// operation: cache-aside reads, persistence-first writes with scoped
// invalidation afterwards.
type Service struct {
	menus    store.MenuRepository
	submenus store.SubmenuRepository
	dishes   store.DishRepository
	preview  store.PreviewRepository
	cache    *cacheStore
	logger   logger.Logger
}

// Dependencies wires repositories and the cache backend into the service.
type Dependencies struct {
	Store    storage.Providers
	Cache    cache.Cache
	Logger   logger.Logger
	CacheTTL time.Duration
}

var errStoreRequired = errors.New("catalog: store providers are required")

// New instantiates the catalog service using the provided dependencies.
func New(deps Dependencies) (*Service, error) {
	if deps.Store.Menus == nil || deps.Store.Submenus == nil || deps.Store.Dishes == nil || deps.Store.Preview == nil {
		return nil, errStoreRequired
	}
	if deps.Cache == nil {
		deps.Cache = &cache.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	return &Service{
		menus:    deps.Store.Menus,
		submenus: deps.Store.Submenus,
		dishes:   deps.Store.Dishes,
		preview:  deps.Store.Preview,
		cache: &cacheStore{
			cache:  deps.Cache,
			logger: deps.Logger,
			ttl:    deps.CacheTTL,
		},
		logger: deps.Logger,
	}, nil
}

// ValidationError reports malformed input, rejected before any persistence
// or cache call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// lookupID parses an identifier from a request path. An unparseable id can
// not name any record, so it maps to the level's NotFound, keeping the
// hierarchy order of error reporting intact.
func lookupID(raw string, miss error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, miss
	}
	return id, nil
}

// suppliedID parses an optional caller-assigned identifier on create.
func suppliedID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, validationf("invalid id %q", raw)
	}
	return id, nil
}

// scopeMenu verifies the menu level of a nested request path.
func (s *Service) scopeMenu(ctx context.Context, menuID string) (uuid.UUID, error) {
	id, err := lookupID(menuID, store.ErrMenuNotFound)
	if err != nil {
		return uuid.Nil, err
	}
	ok, err := s.menus.Exists(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, store.ErrMenuNotFound
	}
	return id, nil
}

// scopeSubmenu verifies menu then submenu, in that order, so the most
// specific true cause is reported.
func (s *Service) scopeSubmenu(ctx context.Context, menuID, submenuID string) (uuid.UUID, uuid.UUID, error) {
	mID, err := s.scopeMenu(ctx, menuID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	sID, err := lookupID(submenuID, store.ErrSubmenuNotFound)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	ok, err := s.submenus.Exists(ctx, sID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, uuid.Nil, store.ErrSubmenuNotFound
	}
	return mID, sID, nil
}
