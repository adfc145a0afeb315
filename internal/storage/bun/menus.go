package bunrepo

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type MenuRepository struct {
	base baseRepository[domain.Menu]
}

var _ store.MenuRepository = (*MenuRepository)(nil)

func NewMenuRepository(db *bun.DB) *MenuRepository {
	handlers := repository.ModelHandlers[*domain.Menu]{
		NewRecord:          func() *domain.Menu { return &domain.Menu{} },
		GetID:              func(m *domain.Menu) uuid.UUID { return m.ID },
		SetID:              func(m *domain.Menu, id uuid.UUID) { m.ID = id },
		GetIdentifier:      func() string { return "id" },
		GetIdentifierValue: func(m *domain.Menu) string { return m.ID.String() },
	}
	return &MenuRepository{
		base: newBaseRepository[domain.Menu](db, handlers, func(m *domain.Menu) *domain.RecordMeta { return &m.RecordMeta }),
	}
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.Menu, error) {
	var menus []domain.Menu
	err := withMenuCounts(r.base.db.NewSelect().Model(&menus)).
		OrderExpr("m.id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	menu := new(domain.Menu)
	err := withMenuCounts(r.base.db.NewSelect().Model(menu)).
		Where("m.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapError(err, store.ErrMenuNotFound)
	}

	// Second pass loads the nested tree; the scanonly count columns are not
	// part of this result set, so the values above survive.
	err = r.base.db.NewSelect().Model(menu).
		Relation("Submenus", orderByID).
		Relation("Submenus.Dishes", orderByID).
		Where("m.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapError(err, store.ErrMenuNotFound)
	}
	for _, sub := range menu.Submenus {
		sub.DishesCount = len(sub.Dishes)
	}
	return menu, nil
}

func (r *MenuRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.db.NewSelect().
		Model((*domain.Menu)(nil)).
		Where("m.id = ?", id).
		Exists(ctx)
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	return r.base.create(ctx, menu, store.ErrMenuNotFound)
}

func (r *MenuRepository) Update(ctx context.Context, menu *domain.Menu) error {
	return r.base.update(ctx, menu, store.ErrMenuNotFound)
}

// Delete removes the menu with its whole subtree in one transaction,
// leaves first so foreign keys never dangle.
func (r *MenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.base.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*domain.Dish)(nil)).
			Where("submenu_id IN (SELECT id FROM submenus WHERE menu_id = ?)", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		_, err = tx.NewDelete().
			Model((*domain.Submenu)(nil)).
			Where("menu_id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*domain.Menu)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return store.ErrMenuNotFound
		}
		return nil
	})
}
