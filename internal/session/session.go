package session

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/naruebet/storefront-admin/internal/datastore"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 72 * time.Hour

// Session is the identity snapshot taken at login or registration time. It
// travels inside the signed token the client holds on to, so it is frozen:
// later edits to the user record do not show up here until the next login.
type Session struct {
	UserID   datastore.ID `json:"userId"`
	Username string       `json:"username"`
	FullName string       `json:"fullName,omitempty"`
	Email    string       `json:"email,omitempty"`
	Role     string       `json:"role"`
}

func (s Session) IsAuthenticated() bool {
	return !s.UserID.IsZero()
}

// IsAdmin reports whether the snapshot carries the admin role. The data set
// contains both "admin" and "Admin", so the comparison ignores case.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && strings.EqualFold(s.Role, "admin")
}

// Claims builds the token claims for a session snapshot.
func Claims(s Session) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":  s.UserID.String(),
		"username": s.Username,
		"fullName": s.FullName,
		"email":    s.Email,
		"role":     s.Role,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}
}

// Token signs a session snapshot into a compact JWT.
func Token(s Session, secret string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims(s))
	return tok.SignedString([]byte(secret))
}

// FromCtx rebuilds the session snapshot from the validated token the JWT
// middleware stored on the request. Requests without a token yield the zero
// Session, which reports IsAuthenticated() == false.
func FromCtx(c *fiber.Ctx) Session {
	u := c.Locals("user")
	if u == nil {
		return Session{}
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return Session{}
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}
	}

	var s Session
	if v, ok := claims["user_id"].(string); ok {
		s.UserID = datastore.ID(v)
	}
	if v, ok := claims["username"].(string); ok {
		s.Username = v
	}
	if v, ok := claims["fullName"].(string); ok {
		s.FullName = v
	}
	if v, ok := claims["email"].(string); ok {
		s.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = v
	}
	return s
}

// Optional validates a bearer token when the request carries one and lets
// the request through anonymously when it does not. Handlers behind it see
// either the caller's session or the zero Session, so public routes can
// still personalize their response for signed-in callers.
func Optional(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Next()
		},
	})
}

// RequireAdmin guards admin-only routes. The role is read from the session
// snapshot, not re-fetched from the store.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := FromCtx(c)
		if !s.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		if !s.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
		}
		return c.Next()
	}
}
