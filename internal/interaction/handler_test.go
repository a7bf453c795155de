package interaction

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/naruebet/storefront-admin/internal/session"
)

const testSecret = "test-secret"

func newReactionsApp(seed []Interaction) *fiber.App {
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	h.RegisterPublicRoutes(app, session.Optional(testSecret))
	return app
}

func getCountsBody(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/v1/products/p1/reactions", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestGetCountsIncludesViewerReaction(t *testing.T) {
	app := newReactionsApp([]Interaction{
		{ID: "1", UserID: "u1", ProductID: "p1", Type: TypeLike},
		{ID: "2", UserID: "u2", ProductID: "p1", Type: TypeDislike},
	})

	token, err := session.Token(session.Session{UserID: "u1", Username: "alice", Role: "user"}, testSecret)
	if err != nil {
		t.Fatalf("token failed: %v", err)
	}

	code, body := getCountsBody(t, app, token)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, `"userType":"like"`) {
		t.Fatalf("signed-in viewer must see their own reaction: %s", body)
	}
	if !strings.Contains(body, `"likes":1`) || !strings.Contains(body, `"dislikes":1`) {
		t.Fatalf("unexpected totals: %s", body)
	}
}

func TestGetCountsAnonymous(t *testing.T) {
	app := newReactionsApp([]Interaction{
		{ID: "1", UserID: "u1", ProductID: "p1", Type: TypeLike},
	})

	code, body := getCountsBody(t, app, "")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if strings.Contains(body, "userType") {
		t.Fatalf("anonymous caller must not get a userType: %s", body)
	}
	if !strings.Contains(body, `"likes":1`) {
		t.Fatalf("unexpected totals: %s", body)
	}
}

func TestGetCountsToleratesGarbageToken(t *testing.T) {
	app := newReactionsApp([]Interaction{
		{ID: "1", UserID: "u1", ProductID: "p1", Type: TypeLike},
	})

	code, body := getCountsBody(t, app, "not-a-jwt")
	if code != fiber.StatusOK {
		t.Fatalf("bad token must degrade to anonymous, got %d", code)
	}
	if strings.Contains(body, "userType") {
		t.Fatalf("bad token must not resolve a viewer: %s", body)
	}
}
