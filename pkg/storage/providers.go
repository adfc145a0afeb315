package storage

import (
	"context"
	"database/sql"

	bunrepo "github.com/goliatone/go-catalog/internal/storage/bun"
	"github.com/goliatone/go-catalog/internal/storage/memory"
	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/uptrace/bun"
)

// Providers exposes all repositories needed by the catalog services.
type Providers struct {
	Menus       store.MenuRepository
	Submenus    store.SubmenuRepository
	Dishes      store.DishRepository
	Preview     store.PreviewRepository
	Transaction store.TransactionManager
}

// NewMemoryProviders returns repositories backed by in-memory maps.
func NewMemoryProviders() Providers {
	s := memory.NewStore()
	return Providers{
		Menus:       memory.NewMenuRepository(s),
		Submenus:    memory.NewSubmenuRepository(s),
		Dishes:      memory.NewDishRepository(s),
		Preview:     memory.NewPreviewRepository(s),
		Transaction: &store.NopTransactionManager{},
	}
}

// NewBunProviders wires Bun-backed repositories using go-repository-bun.
// The caller is responsible for creating the *bun.DB instance (potentially
// via go-persistence-bun) and managing its lifecycle.
func NewBunProviders(db *bun.DB) Providers {
	if db == nil {
		panic("storage: bun DB is required")
	}

	// Register models so go-persistence-bun migrations can pick them up.
	persistence.RegisterModel(
		(*domain.Menu)(nil),
		(*domain.Submenu)(nil),
		(*domain.Dish)(nil),
	)

	return Providers{
		Menus:       bunrepo.NewMenuRepository(db),
		Submenus:    bunrepo.NewSubmenuRepository(db),
		Dishes:      bunrepo.NewDishRepository(db),
		Preview:     bunrepo.NewPreviewRepository(db),
		Transaction: &bunTxManager{db: db},
	}
}

// CreateTables builds the catalog schema. Useful for sqlite-backed runs and
// tests; production deployments drive go-persistence-bun migrations instead.
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*domain.Menu)(nil),
		(*domain.Submenu)(nil),
		(*domain.Dish)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

type bunTxManager struct {
	db *bun.DB
}

func (m *bunTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx)
	})
}
