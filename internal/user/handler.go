package user

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/naruebet/storefront-admin/internal/datastore"
	"github.com/naruebet/storefront-admin/internal/session"
)

type Handler struct {
	service   *Service
	jwtSecret string
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
	app.Post("/api/v1/sign-up", h.signUp)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	// echoes the identity snapshot frozen into the caller's token
	app.Get("/api/v1/session", h.getSession)
}

func (h *Handler) RegisterAdminRoutes(grp fiber.Router) {
	grp.Get("/users", h.getUsers)
	grp.Get("/users/:id", h.getUser)
	grp.Post("/users", h.createUser)
	grp.Put("/users/:id", h.updateUser)
	grp.Delete("/users/:id", h.deleteUser)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (p *registerRequest) validate() string {
	if p.Username == "" || p.Password == "" || p.FullName == "" || p.Phone == "" || p.Address == "" {
		return "missing required fields"
	}
	if !emailRx.MatchString(p.Email) {
		return "invalid email address"
	}
	return ""
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(credentialsRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Username == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing required fields"})
	}

	u, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}

	return h.respondWithSession(c, fiber.StatusOK, u)
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	created, err := h.service.Register(User{
		Username: payload.Username,
		Password: payload.Password,
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Username already taken"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}

	// registration doubles as login, same as signing in right after
	return h.respondWithSession(c, fiber.StatusCreated, created)
}

func (h *Handler) respondWithSession(c *fiber.Ctx, status int, u User) error {
	snapshot := session.Session{
		UserID:   u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
	token, err := session.Token(snapshot, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.Status(status).JSON(fiber.Map{
		"user":  sanitizeUser(u),
		"token": token,
	})
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	if !s.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(s)
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	response := make([]User, 0, len(users))
	for _, u := range users {
		response = append(response, sanitizeUser(u))
	}
	return c.JSON(response)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	u, err := h.service.GetByID(datastore.ID(c.Params("id")))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sanitizeUser(u))
}

// createUserRequest is the admin creation payload: the registration fields
// plus a role, validated the same way sign-up is.
type createUserRequest struct {
	registerRequest
	Role string `json:"role"`
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if msg := payload.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}
	if payload.Role == "" {
		payload.Role = RoleUser
	}

	created, err := h.service.Create(User{
		Username: payload.Username,
		Password: payload.Password,
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
		Role:     payload.Role,
	})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sanitizeUser(created))
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	payload := new(User)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(datastore.ID(c.Params("id")), *payload)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sanitizeUser(updated))
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id := datastore.ID(c.Params("id"))

	target, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}

	// the built-in admin account and the caller's own account stay
	current := session.FromCtx(c)
	if strings.EqualFold(target.Username, "admin") || target.ID == current.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "cannot delete this user"})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": id})
}
