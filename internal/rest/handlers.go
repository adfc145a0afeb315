package rest

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	"github.com/goliatone/go-catalog/pkg/interfaces/store"
)

// Handlers maps the nested resource path onto catalog service calls.
type Handlers struct {
	service  *catalog.Service
	validate *validator.Validate
	logger   logger.Logger
}

func New(service *catalog.Service, log logger.Logger) *Handlers {
	if log == nil {
		log = &logger.Nop{}
	}
	return &Handlers{
		service:  service,
		validate: validator.New(),
		logger:   log,
	}
}

// respondError translates service errors into transport responses. Misses
// become 404 with the entity named in the detail, rejected input becomes
// 400, everything else is a 500 with the cause logged but not leaked.
func (h *Handlers) respondError(c *fiber.Ctx, err error) error {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: notFound.Error()})
	}
	if catalog.IsValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: err.Error()})
	}
	h.logger.Error("request failed",
		logger.Field{Key: "path", Value: c.Path()},
		logger.Field{Key: "error", Value: err})
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Detail: "internal error"})
}

func (h *Handlers) badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: err.Error()})
}

// parseBody decodes and validates a JSON request body.
func (h *Handlers) parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return h.validate.Struct(out)
}

func (h *Handlers) ListMenus(c *fiber.Ctx) error {
	menus, err := h.service.ListMenus(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(menus)
}

func (h *Handlers) GetMenu(c *fiber.Ctx) error {
	menu, err := h.service.GetMenu(c.UserContext(), c.Params("menu_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(menu)
}

func (h *Handlers) CreateMenu(c *fiber.Ctx) error {
	var req menuCreateRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.badRequest(c, err)
	}
	menu, err := h.service.CreateMenu(c.UserContext(), catalog.MenuInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(menu)
}

func (h *Handlers) UpdateMenu(c *fiber.Ctx) error {
	var req menuUpdateRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.badRequest(c, err)
	}
	menu, err := h.service.UpdateMenu(c.UserContext(), c.Params("menu_id"), catalog.MenuUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(menu)
}

func (h *Handlers) DeleteMenu(c *fiber.Ctx) error {
	if err := h.service.DeleteMenu(c.UserContext(), c.Params("menu_id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(deleteResponse{Status: true, Message: "menu deleted"})
}

func (h *Handlers) ListSubmenus(c *fiber.Ctx) error {
	submenus, err := h.service.ListSubmenus(c.UserContext(), c.Params("menu_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(submenus)
}

func (h *Handlers) GetSubmenu(c *fiber.Ctx) error {
	submenu, err := h.service.GetSubmenu(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(submenu)
}

func (h *Handlers) CreateSubmenu(c *fiber.Ctx) error {
	var req submenuCreateRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.badRequest(c, err)
	}
	submenu, err := h.service.CreateSubmenu(c.UserContext(), c.Params("menu_id"), catalog.SubmenuInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submenu)
}

func (h *Handlers) UpdateSubmenu(c *fiber.Ctx) error {
	var req submenuUpdateRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.badRequest(c, err)
	}
	submenu, err := h.service.UpdateSubmenu(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"),
		catalog.SubmenuUpdate{
			Title:       req.Title,
			Description: req.Description,
		})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(submenu)
}

func (h *Handlers) DeleteSubmenu(c *fiber.Ctx) error {
	if err := h.service.DeleteSubmenu(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(deleteResponse{Status: true, Message: "submenu deleted"})
}

func (h *Handlers) ListDishes(c *fiber.Ctx) error {
	dishes, err := h.service.ListDishes(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(dishes)
}

func (h *Handlers) GetDish(c *fiber.Ctx) error {
	dish, err := h.service.GetDish(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"), c.Params("dish_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(dish)
}

func (h *Handlers) CreateDish(c *fiber.Ctx) error {
	var req dishCreateRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.badRequest(c, err)
	}
	input, err := req.toInput()
	if err != nil {
		return h.badRequest(c, err)
	}
	dish, err := h.service.CreateDish(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"), input)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dish)
}

func (h *Handlers) UpdateDish(c *fiber.Ctx) error {
	var req dishUpdateRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.badRequest(c, err)
	}
	update, err := req.toUpdate()
	if err != nil {
		return h.badRequest(c, err)
	}
	dish, err := h.service.UpdateDish(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"),
		c.Params("dish_id"), update)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(dish)
}

func (h *Handlers) DeleteDish(c *fiber.Ctx) error {
	if err := h.service.DeleteDish(c.UserContext(), c.Params("menu_id"), c.Params("submenu_id"),
		c.Params("dish_id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(deleteResponse{Status: true, Message: "dish deleted"})
}

func (h *Handlers) Preview(c *fiber.Ctx) error {
	tree, err := h.service.Preview(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(tree)
}
