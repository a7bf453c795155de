package stats

import "github.com/gofiber/fiber/v2"

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterAdminRoutes(grp fiber.Router) {
	grp.Get("/dashboard", h.getDashboard)
}

func (h *Handler) getDashboard(c *fiber.Ctx) error {
	d, err := h.engine.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(d)
}
