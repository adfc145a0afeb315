package commands

import (
	internalcommands "github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	command "github.com/goliatone/go-command"
)

// Re-export request types so consumers need not import internal packages.
type (
	MenuUpsert    = internalcommands.MenuUpsert
	SubmenuUpsert = internalcommands.SubmenuUpsert
	DishUpsert    = internalcommands.DishUpsert
	EntryDelete   = internalcommands.EntryDelete
	SheetSync     = internalcommands.SheetSync
	CacheFlush    = internalcommands.CacheFlush
)

// Registry exposes go-command compatible handlers backed by the catalog
// service.
type Registry struct {
	Catalog       *internalcommands.Catalog
	UpsertMenu    command.Commander[MenuUpsert]
	UpsertSubmenu command.Commander[SubmenuUpsert]
	UpsertDish    command.Commander[DishUpsert]
	DeleteEntry   command.Commander[EntryDelete]
	SyncSheet     command.Commander[SheetSync]
	FlushCache    command.Commander[CacheFlush]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Service *catalog.Service
	Cache   cache.Cache
	Logger  logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	cat, err := internalcommands.NewCatalog(internalcommands.Dependencies{
		Service: deps.Service,
		Cache:   deps.Cache,
		Logger:  deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:       cat,
		UpsertMenu:    cat.UpsertMenu,
		UpsertSubmenu: cat.UpsertSubmenu,
		UpsertDish:    cat.UpsertDish,
		DeleteEntry:   cat.DeleteEntry,
		SyncSheet:     cat.SyncSheet,
		FlushCache:    cat.FlushCache,
	}, nil
}

// Commanders returns every handler so callers can register them with
// go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.UpsertMenu,
		r.UpsertSubmenu,
		r.UpsertDish,
		r.DeleteEntry,
		r.SyncSheet,
		r.FlushCache,
	}
}
