package reconciler

import (
	"github.com/goliatone/go-catalog/pkg/domain"
)

// Snapshot is a flat, id-keyed view of the whole catalog. Two snapshots are
// comparable level by level regardless of where they came from, a
// spreadsheet or the live preview tree.
type Snapshot struct {
	Menus    map[string]MenuRecord
	Submenus map[string]SubmenuRecord
	Dishes   map[string]DishRecord
}

type MenuRecord struct {
	ID          string
	Title       string
	Description string
}

type SubmenuRecord struct {
	ID          string
	Title       string
	Description string
	MenuID      string
}

type DishRecord struct {
	ID          string
	Title       string
	Description string
	Price       domain.Price
	Discount    int
	SubmenuID   string
	MenuID      string
}

func newSnapshot() Snapshot {
	return Snapshot{
		Menus:    map[string]MenuRecord{},
		Submenus: map[string]SubmenuRecord{},
		Dishes:   map[string]DishRecord{},
	}
}

// FromPreview flattens the nested preview tree into a snapshot.
func FromPreview(tree []domain.Menu) Snapshot {
	snap := newSnapshot()
	for _, menu := range tree {
		menuID := menu.ID.String()
		snap.Menus[menuID] = MenuRecord{
			ID:          menuID,
			Title:       menu.Title,
			Description: menu.Description,
		}
		for _, submenu := range menu.Submenus {
			submenuID := submenu.ID.String()
			snap.Submenus[submenuID] = SubmenuRecord{
				ID:          submenuID,
				Title:       submenu.Title,
				Description: submenu.Description,
				MenuID:      menuID,
			}
			for _, dish := range submenu.Dishes {
				snap.Dishes[dish.ID.String()] = DishRecord{
					ID:          dish.ID.String(),
					Title:       dish.Title,
					Description: dish.Description,
					Price:       dish.Price,
					Discount:    dish.Discount,
					SubmenuID:   submenuID,
					MenuID:      menuID,
				}
			}
		}
	}
	return snap
}
