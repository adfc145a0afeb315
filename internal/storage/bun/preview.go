package bunrepo

import (
	"context"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/uptrace/bun"
)

// PreviewRepository loads the entire catalog tree in one traversal. This is
// the expensive query the preview cache blob exists to amortize.
type PreviewRepository struct {
	db *bun.DB
}

var _ store.PreviewRepository = (*PreviewRepository)(nil)

func NewPreviewRepository(db *bun.DB) *PreviewRepository {
	return &PreviewRepository{db: db}
}

func (r *PreviewRepository) Preview(ctx context.Context) ([]domain.Menu, error) {
	var menus []domain.Menu
	err := r.db.NewSelect().
		Model(&menus).
		Relation("Submenus", orderByID).
		Relation("Submenus.Dishes", orderByID).
		OrderExpr("m.id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	annotateCounts(menus)
	return menus, nil
}

// annotateCounts fills the derived count fields from the loaded tree so the
// preview payload carries the same attributes as single-entity reads.
func annotateCounts(menus []domain.Menu) {
	for i := range menus {
		dishes := 0
		for _, sub := range menus[i].Submenus {
			sub.DishesCount = len(sub.Dishes)
			dishes += len(sub.Dishes)
		}
		menus[i].SubmenusCount = len(menus[i].Submenus)
		menus[i].DishesCount = dishes
	}
}
