package bunrepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupSQLiteDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.DriverName(), "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("sql open: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	models := []any{
		(*domain.Menu)(nil),
		(*domain.Submenu)(nil),
		(*domain.Dish)(nil),
	}
	for _, model := range models {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		if err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

type fixture struct {
	menus    *MenuRepository
	submenus *SubmenuRepository
	dishes   *DishRepository
	preview  *PreviewRepository
}

func setupRepos(t *testing.T) fixture {
	t.Helper()
	db := setupSQLiteDB(t)
	return fixture{
		menus:    NewMenuRepository(db),
		submenus: NewSubmenuRepository(db),
		dishes:   NewDishRepository(db),
		preview:  NewPreviewRepository(db),
	}
}

func seedTree(t *testing.T, f fixture, dishCount int) (*domain.Menu, *domain.Submenu, []*domain.Dish) {
	t.Helper()
	ctx := context.Background()

	menu := &domain.Menu{Title: "My menu 1", Description: "Main menu"}
	if err := f.menus.Create(ctx, menu); err != nil {
		t.Fatalf("create menu: %v", err)
	}
	submenu := &domain.Submenu{Title: "Soups", Description: "Hot", MenuID: menu.ID}
	if err := f.submenus.Create(ctx, submenu); err != nil {
		t.Fatalf("create submenu: %v", err)
	}
	dishes := make([]*domain.Dish, 0, dishCount)
	for i := 0; i < dishCount; i++ {
		price, err := domain.ParsePrice("10.00")
		if err != nil {
			t.Fatalf("parse price: %v", err)
		}
		dish := &domain.Dish{
			Title:     "Dish",
			Price:     price,
			SubmenuID: submenu.ID,
		}
		if err := f.dishes.Create(ctx, dish); err != nil {
			t.Fatalf("create dish: %v", err)
		}
		dishes = append(dishes, dish)
	}
	return menu, submenu, dishes
}

func TestMenuCountsAfterSeed(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	menu, _, _ := seedTree(t, f, 2)

	got, err := f.menus.GetByID(ctx, menu.ID)
	if err != nil {
		t.Fatalf("get menu: %v", err)
	}
	if got.SubmenusCount != 1 || got.DishesCount != 2 {
		t.Fatalf("expected counts 1/2, got %d/%d", got.SubmenusCount, got.DishesCount)
	}
	if len(got.Submenus) != 1 || len(got.Submenus[0].Dishes) != 2 {
		t.Fatalf("expected nested tree, got %+v", got.Submenus)
	}
	if got.Submenus[0].DishesCount != 2 {
		t.Fatalf("expected nested dishes_count 2, got %d", got.Submenus[0].DishesCount)
	}
}

func TestMenuListKeepsEmptyMenus(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	seedTree(t, f, 3)

	empty := &domain.Menu{Title: "Empty", Description: "No children"}
	if err := f.menus.Create(ctx, empty); err != nil {
		t.Fatalf("create empty menu: %v", err)
	}

	menus, err := f.menus.List(ctx)
	if err != nil {
		t.Fatalf("list menus: %v", err)
	}
	if len(menus) != 2 {
		t.Fatalf("expected 2 menus, got %d", len(menus))
	}
	byTitle := map[string]domain.Menu{}
	for _, m := range menus {
		byTitle[m.Title] = m
	}
	if m := byTitle["My menu 1"]; m.SubmenusCount != 1 || m.DishesCount != 3 {
		t.Fatalf("seeded menu counts: got %d/%d", m.SubmenusCount, m.DishesCount)
	}
	if m := byTitle["Empty"]; m.SubmenusCount != 0 || m.DishesCount != 0 {
		t.Fatalf("empty menu counts: got %d/%d", m.SubmenusCount, m.DishesCount)
	}
}

func TestMenuCountsNoDoubleCounting(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	menu, _, _ := seedTree(t, f, 2)

	second := &domain.Submenu{Title: "Desserts", MenuID: menu.ID}
	if err := f.submenus.Create(ctx, second); err != nil {
		t.Fatalf("create second submenu: %v", err)
	}
	price, _ := domain.ParsePrice("3.50")
	if err := f.dishes.Create(ctx, &domain.Dish{Title: "Cake", Price: price, SubmenuID: second.ID}); err != nil {
		t.Fatalf("create dish: %v", err)
	}

	got, err := f.menus.GetByID(ctx, menu.ID)
	if err != nil {
		t.Fatalf("get menu: %v", err)
	}
	if got.SubmenusCount != 2 || got.DishesCount != 3 {
		t.Fatalf("expected counts 2/3, got %d/%d", got.SubmenusCount, got.DishesCount)
	}
}

func TestMenuDeleteCascades(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	menu, submenu, dishes := seedTree(t, f, 2)

	if err := f.menus.Delete(ctx, menu.ID); err != nil {
		t.Fatalf("delete menu: %v", err)
	}
	if _, err := f.menus.GetByID(ctx, menu.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected menu gone, got %v", err)
	}
	if _, err := f.submenus.GetByID(ctx, submenu.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected submenu gone, got %v", err)
	}
	for _, d := range dishes {
		if _, err := f.dishes.GetByID(ctx, d.ID); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("expected dish gone, got %v", err)
		}
	}
}

func TestSubmenuDeleteCascadesToDishes(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	menu, submenu, _ := seedTree(t, f, 2)

	if err := f.submenus.Delete(ctx, submenu.ID); err != nil {
		t.Fatalf("delete submenu: %v", err)
	}
	got, err := f.menus.GetByID(ctx, menu.ID)
	if err != nil {
		t.Fatalf("get menu: %v", err)
	}
	if got.SubmenusCount != 0 || got.DishesCount != 0 {
		t.Fatalf("expected counts 0/0 after cascade, got %d/%d", got.SubmenusCount, got.DishesCount)
	}
}

func TestDeleteMissingReportsNotFound(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()

	if err := f.menus.Delete(ctx, uuid.New()); !errors.Is(err, store.ErrMenuNotFound) {
		t.Fatalf("expected menu not found, got %v", err)
	}
	if err := f.submenus.Delete(ctx, uuid.New()); !errors.Is(err, store.ErrSubmenuNotFound) {
		t.Fatalf("expected submenu not found, got %v", err)
	}
	if err := f.dishes.Delete(ctx, uuid.New()); !errors.Is(err, store.ErrDishNotFound) {
		t.Fatalf("expected dish not found, got %v", err)
	}
}

func TestSubmenuListAnnotatesDishCount(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	menu, _, _ := seedTree(t, f, 2)

	submenus, err := f.submenus.List(ctx, menu.ID)
	if err != nil {
		t.Fatalf("list submenus: %v", err)
	}
	if len(submenus) != 1 {
		t.Fatalf("expected 1 submenu, got %d", len(submenus))
	}
	if submenus[0].DishesCount != 2 {
		t.Fatalf("expected dishes_count 2, got %d", submenus[0].DishesCount)
	}
}

func TestPreviewLoadsFullTree(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	seedTree(t, f, 2)

	menus, err := f.preview.Preview(ctx)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(menus) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(menus))
	}
	if menus[0].SubmenusCount != 1 || menus[0].DishesCount != 2 {
		t.Fatalf("expected counts 1/2, got %d/%d", menus[0].SubmenusCount, menus[0].DishesCount)
	}
	if len(menus[0].Submenus) != 1 || len(menus[0].Submenus[0].Dishes) != 2 {
		t.Fatalf("expected nested tree in preview")
	}
}

func TestDishPriceRoundTrip(t *testing.T) {
	f := setupRepos(t)
	ctx := context.Background()
	_, submenu, _ := seedTree(t, f, 0)

	price, _ := domain.ParsePrice("9.99")
	dish := &domain.Dish{Title: "Borscht", Price: price, Discount: 33, SubmenuID: submenu.ID}
	if err := f.dishes.Create(ctx, dish); err != nil {
		t.Fatalf("create dish: %v", err)
	}

	got, err := f.dishes.GetByID(ctx, dish.ID)
	if err != nil {
		t.Fatalf("get dish: %v", err)
	}
	if got.Price.String() != "9.99" {
		t.Fatalf("stored price: got %s", got.Price.String())
	}
	if got.EffectivePrice().String() != "6.69" {
		t.Fatalf("effective price: got %s", got.EffectivePrice().String())
	}
}
