package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-catalog/internal/reconciler"
	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	command "github.com/goliatone/go-command"
)

// Catalog exposes go-command compatible handlers for host transports and
// operational tooling.
type Catalog struct {
	UpsertMenu    command.Commander[MenuUpsert]
	UpsertSubmenu command.Commander[SubmenuUpsert]
	UpsertDish    command.Commander[DishUpsert]
	DeleteEntry   command.Commander[EntryDelete]
	SyncSheet     command.Commander[SheetSync]
	FlushCache    command.Commander[CacheFlush]
}

// Dependencies wires the service and cache into the command catalog.
type Dependencies struct {
	Service *catalog.Service
	Cache   cache.Cache
	Logger  logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Service == nil {
		return nil, errors.New("commands: catalog service is required")
	}
	if deps.Cache == nil {
		deps.Cache = &cache.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	return &Catalog{
		UpsertMenu:    menuUpsertCommand{svc: deps.Service},
		UpsertSubmenu: submenuUpsertCommand{svc: deps.Service},
		UpsertDish:    dishUpsertCommand{svc: deps.Service},
		DeleteEntry:   entryDeleteCommand{svc: deps.Service},
		SyncSheet:     sheetSyncCommand{svc: deps.Service, logger: deps.Logger},
		FlushCache:    cacheFlushCommand{cache: deps.Cache, logger: deps.Logger},
	}, nil
}

// MenuUpsert creates a menu, or updates it when AllowUpdate is set.
type MenuUpsert struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AllowUpdate bool   `json:"allow_update"`
}

type menuUpsertCommand struct {
	svc *catalog.Service
}

func (c menuUpsertCommand) Execute(ctx context.Context, msg MenuUpsert) error {
	msg.Title = strings.TrimSpace(msg.Title)
	if msg.ID != "" {
		if _, err := c.svc.GetMenu(ctx, msg.ID); err == nil {
			if !msg.AllowUpdate {
				return errors.New("commands: menu already exists")
			}
			_, err := c.svc.UpdateMenu(ctx, msg.ID, catalog.MenuUpdate{
				Title:       &msg.Title,
				Description: &msg.Description,
			})
			return err
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}
	_, err := c.svc.CreateMenu(ctx, catalog.MenuInput{
		ID:          msg.ID,
		Title:       msg.Title,
		Description: msg.Description,
	})
	return err
}

// SubmenuUpsert creates or updates a submenu under MenuID.
type SubmenuUpsert struct {
	ID          string `json:"id"`
	MenuID      string `json:"menu_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AllowUpdate bool   `json:"allow_update"`
}

type submenuUpsertCommand struct {
	svc *catalog.Service
}

func (c submenuUpsertCommand) Execute(ctx context.Context, msg SubmenuUpsert) error {
	msg.Title = strings.TrimSpace(msg.Title)
	if msg.ID != "" {
		if _, err := c.svc.GetSubmenu(ctx, msg.MenuID, msg.ID); err == nil {
			if !msg.AllowUpdate {
				return errors.New("commands: submenu already exists")
			}
			_, err := c.svc.UpdateSubmenu(ctx, msg.MenuID, msg.ID, catalog.SubmenuUpdate{
				Title:       &msg.Title,
				Description: &msg.Description,
			})
			return err
		} else if !errors.Is(err, store.ErrSubmenuNotFound) {
			return err
		}
	}
	_, err := c.svc.CreateSubmenu(ctx, msg.MenuID, catalog.SubmenuInput{
		ID:          msg.ID,
		Title:       msg.Title,
		Description: msg.Description,
	})
	return err
}

// DishUpsert creates or updates a dish under MenuID/SubmenuID. Price is the
// decimal string form, e.g. "9.99".
type DishUpsert struct {
	ID          string `json:"id"`
	MenuID      string `json:"menu_id"`
	SubmenuID   string `json:"submenu_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Discount    int    `json:"discount"`
	AllowUpdate bool   `json:"allow_update"`
}

type dishUpsertCommand struct {
	svc *catalog.Service
}

func (c dishUpsertCommand) Execute(ctx context.Context, msg DishUpsert) error {
	msg.Title = strings.TrimSpace(msg.Title)
	price, err := domain.ParsePrice(msg.Price)
	if err != nil {
		return err
	}
	if msg.ID != "" {
		if _, err := c.svc.GetDish(ctx, msg.MenuID, msg.SubmenuID, msg.ID); err == nil {
			if !msg.AllowUpdate {
				return errors.New("commands: dish already exists")
			}
			_, err := c.svc.UpdateDish(ctx, msg.MenuID, msg.SubmenuID, msg.ID, catalog.DishUpdate{
				Title:       &msg.Title,
				Description: &msg.Description,
				Price:       &price,
				Discount:    &msg.Discount,
			})
			return err
		} else if !errors.Is(err, store.ErrDishNotFound) {
			return err
		}
	}
	_, err = c.svc.CreateDish(ctx, msg.MenuID, msg.SubmenuID, catalog.DishInput{
		ID:          msg.ID,
		Title:       msg.Title,
		Description: msg.Description,
		Price:       price,
		Discount:    msg.Discount,
	})
	return err
}

// EntryDelete removes one entity at the deepest level supplied: dish when
// DishID is set, submenu when SubmenuID is the deepest, otherwise the menu
// with its whole subtree.
type EntryDelete struct {
	MenuID    string `json:"menu_id"`
	SubmenuID string `json:"submenu_id"`
	DishID    string `json:"dish_id"`
}

type entryDeleteCommand struct {
	svc *catalog.Service
}

func (c entryDeleteCommand) Execute(ctx context.Context, msg EntryDelete) error {
	switch {
	case msg.DishID != "":
		return c.svc.DeleteDish(ctx, msg.MenuID, msg.SubmenuID, msg.DishID)
	case msg.SubmenuID != "":
		return c.svc.DeleteSubmenu(ctx, msg.MenuID, msg.SubmenuID)
	case msg.MenuID != "":
		return c.svc.DeleteMenu(ctx, msg.MenuID)
	default:
		return errors.New("commands: an id is required")
	}
}

// SheetSync runs one reconciliation pass against the given workbook.
type SheetSync struct {
	Path  string `json:"path"`
	Sheet string `json:"sheet"`
}

type sheetSyncCommand struct {
	svc    *catalog.Service
	logger logger.Logger
}

func (c sheetSyncCommand) Execute(ctx context.Context, msg SheetSync) error {
	if msg.Path == "" {
		return errors.New("commands: workbook path is required")
	}
	rec := reconciler.New(c.svc, reconciler.Config{
		SourcePath: msg.Path,
		SheetName:  msg.Sheet,
	}, c.logger)
	return rec.RunOnce(ctx)
}

// CacheFlush drops every cached view. Reads repopulate from the store.
type CacheFlush struct{}

type cacheFlushCommand struct {
	cache  cache.Cache
	logger logger.Logger
}

func (c cacheFlushCommand) Execute(ctx context.Context, _ CacheFlush) error {
	if err := c.cache.Flush(ctx); err != nil {
		return err
	}
	c.logger.Info("cache flushed")
	return nil
}
