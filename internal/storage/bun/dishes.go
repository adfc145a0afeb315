package bunrepo

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type DishRepository struct {
	base baseRepository[domain.Dish]
}

var _ store.DishRepository = (*DishRepository)(nil)

func NewDishRepository(db *bun.DB) *DishRepository {
	handlers := repository.ModelHandlers[*domain.Dish]{
		NewRecord:          func() *domain.Dish { return &domain.Dish{} },
		GetID:              func(d *domain.Dish) uuid.UUID { return d.ID },
		SetID:              func(d *domain.Dish, id uuid.UUID) { d.ID = id },
		GetIdentifier:      func() string { return "id" },
		GetIdentifierValue: func(d *domain.Dish) string { return d.ID.String() },
	}
	return &DishRepository{
		base: newBaseRepository[domain.Dish](db, handlers, func(d *domain.Dish) *domain.RecordMeta { return &d.RecordMeta }),
	}
}

func (r *DishRepository) List(ctx context.Context, submenuID uuid.UUID) ([]domain.Dish, error) {
	var dishes []domain.Dish
	err := r.base.db.NewSelect().
		Model(&dishes).
		Where("d.submenu_id = ?", submenuID).
		OrderExpr("d.id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *DishRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	dish := new(domain.Dish)
	err := r.base.db.NewSelect().
		Model(dish).
		Where("d.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, mapError(err, store.ErrDishNotFound)
	}
	return dish, nil
}

func (r *DishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	return r.base.create(ctx, dish, store.ErrDishNotFound)
}

func (r *DishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	return r.base.update(ctx, dish, store.ErrDishNotFound)
}

func (r *DishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.base.db.NewDelete().
		Model((*domain.Dish)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return store.ErrDishNotFound
	}
	return nil
}
