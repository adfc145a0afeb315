package rest

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the three-level resource path under /api/v1.
func (h *Handlers) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/menus/preview", h.Preview)

	api.Get("/menus", h.ListMenus)
	api.Post("/menus", h.CreateMenu)
	api.Get("/menus/:menu_id", h.GetMenu)
	api.Patch("/menus/:menu_id", h.UpdateMenu)
	api.Delete("/menus/:menu_id", h.DeleteMenu)

	submenus := api.Group("/menus/:menu_id/submenus")
	submenus.Get("/", h.ListSubmenus)
	submenus.Post("/", h.CreateSubmenu)
	submenus.Get("/:submenu_id", h.GetSubmenu)
	submenus.Patch("/:submenu_id", h.UpdateSubmenu)
	submenus.Delete("/:submenu_id", h.DeleteSubmenu)

	dishes := api.Group("/menus/:menu_id/submenus/:submenu_id/dishes")
	dishes.Get("/", h.ListDishes)
	dishes.Post("/", h.CreateDish)
	dishes.Get("/:dish_id", h.GetDish)
	dishes.Patch("/:dish_id", h.UpdateDish)
	dishes.Delete("/:dish_id", h.DeleteDish)
}
