package bunrepo

import (
	"github.com/uptrace/bun"
)

// submenuCountColumns annotates a menu select with derived counts. The
// distinct counts keep a menu with several submenus from double-counting
// dishes, and the outer joins keep empty menus in the result.
func withMenuCounts(q *bun.SelectQuery) *bun.SelectQuery {
	return q.
		ColumnExpr("m.*").
		ColumnExpr("count(DISTINCT s.id) AS submenus_count").
		ColumnExpr("count(DISTINCT d.id) AS dishes_count").
		Join("LEFT JOIN submenus AS s ON s.menu_id = m.id").
		Join("LEFT JOIN dishes AS d ON d.submenu_id = s.id").
		GroupExpr("m.id")
}

func withDishCount(q *bun.SelectQuery) *bun.SelectQuery {
	return q.
		ColumnExpr("s.*").
		ColumnExpr("count(d.id) AS dishes_count").
		Join("LEFT JOIN dishes AS d ON d.submenu_id = s.id").
		GroupExpr("s.id")
}

func orderByID(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("id")
}
