package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
)

// splitKeys partitions the desired and current key sets into the three
// change classes: present only in desired, present in both, present only in
// current. Results are sorted for deterministic application.
func splitKeys[D, C any](desired map[string]D, current map[string]C) (create, update, remove []string) {
	for id := range desired {
		if _, ok := current[id]; ok {
			update = append(update, id)
		} else {
			create = append(create, id)
		}
	}
	for id := range current {
		if _, ok := desired[id]; !ok {
			remove = append(remove, id)
		}
	}
	sort.Strings(create)
	sort.Strings(update)
	sort.Strings(remove)
	return create, update, remove
}

// apply converges the live catalog toward the desired snapshot, one level
// at a time from the top so parents always exist before their children.
// Within a level the order is create, delete, update. Deletes of records
// already removed by an ancestor cascade are no-ops.
func apply(ctx context.Context, svc *catalog.Service, desired, current Snapshot) error {
	if err := applyMenus(ctx, svc, desired, current); err != nil {
		return err
	}
	if err := applySubmenus(ctx, svc, desired, current); err != nil {
		return err
	}
	return applyDishes(ctx, svc, desired, current)
}

func applyMenus(ctx context.Context, svc *catalog.Service, desired, current Snapshot) error {
	create, update, remove := splitKeys(desired.Menus, current.Menus)

	for _, id := range create {
		rec := desired.Menus[id]
		if _, err := svc.CreateMenu(ctx, catalog.MenuInput{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
		}); err != nil {
			return fmt.Errorf("reconciler: create menu %s: %w", id, err)
		}
	}
	for _, id := range remove {
		if err := svc.DeleteMenu(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("reconciler: delete menu %s: %w", id, err)
		}
	}
	for _, id := range update {
		rec, live := desired.Menus[id], current.Menus[id]
		if rec == live {
			continue
		}
		if _, err := svc.UpdateMenu(ctx, id, catalog.MenuUpdate{
			Title:       &rec.Title,
			Description: &rec.Description,
		}); err != nil {
			return fmt.Errorf("reconciler: update menu %s: %w", id, err)
		}
	}
	return nil
}

func applySubmenus(ctx context.Context, svc *catalog.Service, desired, current Snapshot) error {
	create, update, remove := splitKeys(desired.Submenus, current.Submenus)

	for _, id := range create {
		rec := desired.Submenus[id]
		if _, err := svc.CreateSubmenu(ctx, rec.MenuID, catalog.SubmenuInput{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
		}); err != nil {
			return fmt.Errorf("reconciler: create submenu %s: %w", id, err)
		}
	}
	for _, id := range remove {
		rec := current.Submenus[id]
		if err := svc.DeleteSubmenu(ctx, rec.MenuID, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("reconciler: delete submenu %s: %w", id, err)
		}
	}
	for _, id := range update {
		rec, live := desired.Submenus[id], current.Submenus[id]
		if rec == live {
			continue
		}
		if _, err := svc.UpdateSubmenu(ctx, rec.MenuID, id, catalog.SubmenuUpdate{
			Title:       &rec.Title,
			Description: &rec.Description,
		}); err != nil {
			return fmt.Errorf("reconciler: update submenu %s: %w", id, err)
		}
	}
	return nil
}

func applyDishes(ctx context.Context, svc *catalog.Service, desired, current Snapshot) error {
	create, update, remove := splitKeys(desired.Dishes, current.Dishes)

	for _, id := range create {
		rec := desired.Dishes[id]
		if _, err := svc.CreateDish(ctx, rec.MenuID, rec.SubmenuID, catalog.DishInput{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Price:       rec.Price,
			Discount:    rec.Discount,
		}); err != nil {
			return fmt.Errorf("reconciler: create dish %s: %w", id, err)
		}
	}
	for _, id := range remove {
		rec := current.Dishes[id]
		if err := svc.DeleteDish(ctx, rec.MenuID, rec.SubmenuID, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("reconciler: delete dish %s: %w", id, err)
		}
	}
	for _, id := range update {
		rec, live := desired.Dishes[id], current.Dishes[id]
		if rec.Title == live.Title && rec.Description == live.Description &&
			rec.Price.Equal(live.Price) && rec.Discount == live.Discount {
			continue
		}
		if _, err := svc.UpdateDish(ctx, rec.MenuID, rec.SubmenuID, id, catalog.DishUpdate{
			Title:       &rec.Title,
			Description: &rec.Description,
			Price:       &rec.Price,
			Discount:    &rec.Discount,
		}); err != nil {
			return fmt.Errorf("reconciler: update dish %s: %w", id, err)
		}
	}
	return nil
}
