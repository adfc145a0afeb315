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

type SubmenuRepository struct {
	base baseRepository[domain.Submenu]
}

var _ store.SubmenuRepository = (*SubmenuRepository)(nil)

func NewSubmenuRepository(db *bun.DB) *SubmenuRepository {
	handlers := repository.ModelHandlers[*domain.Submenu]{
		NewRecord:          func() *domain.Submenu { return &domain.Submenu{} },
		GetID:              func(s *domain.Submenu) uuid.UUID { return s.ID },
		SetID:              func(s *domain.Submenu, id uuid.UUID) { s.ID = id },
		GetIdentifier:      func() string { return "id" },
		GetIdentifierValue: func(s *domain.Submenu) string { return s.ID.String() },
	}
	return &SubmenuRepository{
		base: newBaseRepository[domain.Submenu](db, handlers, func(s *domain.Submenu) *domain.RecordMeta { return &s.RecordMeta }),
	}
}

func (r *SubmenuRepository) List(ctx context.Context, menuID uuid.UUID) ([]domain.Submenu, error) {
	var submenus []domain.Submenu
	err := withDishCount(r.base.db.NewSelect().Model(&submenus)).
		Where("s.menu_id = ?", menuID).
		OrderExpr("s.id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return submenus, nil
}

func (r *SubmenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submenu, error) {
	submenu := new(domain.Submenu)
	err := withDishCount(r.base.db.NewSelect().Model(submenu)).
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapError(err, store.ErrSubmenuNotFound)
	}
	return submenu, nil
}

func (r *SubmenuRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.db.NewSelect().
		Model((*domain.Submenu)(nil)).
		Where("s.id = ?", id).
		Exists(ctx)
}

func (r *SubmenuRepository) Create(ctx context.Context, submenu *domain.Submenu) error {
	return r.base.create(ctx, submenu, store.ErrSubmenuNotFound)
}

func (r *SubmenuRepository) Update(ctx context.Context, submenu *domain.Submenu) error {
	return r.base.update(ctx, submenu, store.ErrSubmenuNotFound)
}

func (r *SubmenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.base.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*domain.Dish)(nil)).
			Where("submenu_id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*domain.Submenu)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return store.ErrSubmenuNotFound
		}
		return nil
	})
}
