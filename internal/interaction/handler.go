package interaction

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/naruebet/storefront-admin/internal/datastore"
	"github.com/naruebet/storefront-admin/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the counts route. The route is public, but it
// personalizes the response for signed-in callers, so it takes an
// optional-auth middleware (session.Optional) that fills in the session when
// a token is present.
func (h *Handler) RegisterPublicRoutes(app *fiber.App, optionalAuth fiber.Handler) {
	app.Get("/api/v1/products/:id/reactions", optionalAuth, h.getCounts)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/reactions/toggle", h.toggle)
}

type toggleRequest struct {
	ProductID datastore.ID `json:"productId"`
	Type      string       `json:"type"`
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	s := session.FromCtx(c)
	if !s.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	result, err := h.service.Toggle(s.UserID, payload.ProductID, payload.Type)
	if err != nil {
		if errors.Is(err, ErrBadType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(result)
}

func (h *Handler) getCounts(c *fiber.Ctx) error {
	// viewer identity is optional here; anonymous callers get the bare
	// totals, signed-in callers additionally get their own reaction
	s := session.FromCtx(c)

	counts, err := h.service.CountsFor(datastore.ID(c.Params("id")), s.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(counts)
}
