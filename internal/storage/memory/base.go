package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/google/uuid"
)

// Store holds the whole catalog in process. The three entity maps share one
// lock because counts and cascades cross entity boundaries.
type Store struct {
	mu       sync.RWMutex
	menus    map[uuid.UUID]domain.Menu
	submenus map[uuid.UUID]domain.Submenu
	dishes   map[uuid.UUID]domain.Dish
}

// NewStore returns an empty in-memory catalog store.
func NewStore() *Store {
	return &Store{
		menus:    make(map[uuid.UUID]domain.Menu),
		submenus: make(map[uuid.UUID]domain.Submenu),
		dishes:   make(map[uuid.UUID]domain.Dish),
	}
}

func stamp(meta *domain.RecordMeta) {
	meta.EnsureID()
	now := time.Now().UTC()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now
}

// Callers hold at least a read lock.

func (s *Store) submenusOf(menuID uuid.UUID) []domain.Submenu {
	var out []domain.Submenu
	for _, sub := range s.submenus {
		if sub.MenuID == menuID {
			out = append(out, sub)
		}
	}
	sortByID(out, func(sub domain.Submenu) uuid.UUID { return sub.ID })
	return out
}

func (s *Store) dishesOf(submenuID uuid.UUID) []domain.Dish {
	var out []domain.Dish
	for _, d := range s.dishes {
		if d.SubmenuID == submenuID {
			out = append(out, d)
		}
	}
	sortByID(out, func(d domain.Dish) uuid.UUID { return d.ID })
	return out
}

func (s *Store) countsOf(menuID uuid.UUID) (submenus, dishes int) {
	for _, sub := range s.submenus {
		if sub.MenuID != menuID {
			continue
		}
		submenus++
		for _, d := range s.dishes {
			if d.SubmenuID == sub.ID {
				dishes++
			}
		}
	}
	return submenus, dishes
}

func sortByID[T any](items []T, id func(T) uuid.UUID) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]).String() < id(items[j]).String()
	})
}
