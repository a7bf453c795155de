package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(seed []User) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	h := NewHandler(NewService(repo), "test-secret")
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app, repo
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	out := map[string]interface{}{}
	_ = json.Unmarshal(b, &out)
	return res.StatusCode, out
}

func TestSignUpAndSignIn(t *testing.T) {
	app, _ := newTestApp(nil)

	code, body := postJSON(t, app, "/api/v1/sign-up",
		`{"username":"alice","password":"pw","fullName":"Alice A","email":"alice@example.com","phone":"1","address":"here"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("sign-up expected 201, got %d (%v)", code, body)
	}
	if body["token"] == "" || body["token"] == nil {
		t.Fatalf("sign-up must log the caller in, body: %v", body)
	}
	if u, ok := body["user"].(map[string]interface{}); !ok || u["password"] != nil && u["password"] != "" {
		t.Fatalf("password must not leak: %v", body["user"])
	}

	code, body = postJSON(t, app, "/api/v1/sign-in", `{"username":"alice","password":"pw"}`)
	if code != fiber.StatusOK {
		t.Fatalf("sign-in expected 200, got %d (%v)", code, body)
	}
	if body["token"] == nil {
		t.Fatalf("sign-in must return a token")
	}
}

func TestSignUpDuplicateUsername(t *testing.T) {
	app, repo := newTestApp([]User{{ID: "1", Username: "alice", Password: "pw"}})

	code, _ := postJSON(t, app, "/api/v1/sign-up",
		`{"username":"alice","password":"pw","fullName":"A","email":"a@b.co","phone":"1","address":"x"}`)
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	all, _ := repo.List()
	if len(all) != 1 {
		t.Fatalf("conflicting sign-up must not create a user")
	}
}

func TestSignUpValidation(t *testing.T) {
	app, _ := newTestApp(nil)

	code, _ := postJSON(t, app, "/api/v1/sign-up", `{"username":"bob"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("missing fields expected 400, got %d", code)
	}

	code, _ = postJSON(t, app, "/api/v1/sign-up",
		`{"username":"bob","password":"pw","fullName":"B","email":"not-an-email","phone":"1","address":"x"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("bad email expected 400, got %d", code)
	}
}

func newAdminTestApp(seed []User) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	h := NewHandler(NewService(repo), "test-secret")
	app := fiber.New()
	// admin routes mounted without the guard; the guard has its own tests
	h.RegisterAdminRoutes(app.Group("/api/v1/admin"))
	return app, repo
}

func TestAdminCreateUserValidatesLikeSignUp(t *testing.T) {
	app, repo := newAdminTestApp(nil)

	code, _ := postJSON(t, app, "/api/v1/admin/users", `{"username":"bob","password":"pw"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("missing fields expected 400, got %d", code)
	}
	code, _ = postJSON(t, app, "/api/v1/admin/users",
		`{"username":"bob","password":"pw","fullName":"B","email":"not-an-email","phone":"1","address":"x"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("bad email expected 400, got %d", code)
	}
	if all, _ := repo.List(); len(all) != 0 {
		t.Fatalf("invalid payloads must not create users, have %d", len(all))
	}
}

func TestAdminCreateUserKeepsRequestedRole(t *testing.T) {
	app, _ := newAdminTestApp(nil)

	code, body := postJSON(t, app, "/api/v1/admin/users",
		`{"username":"carol","password":"pw","fullName":"Carol C","email":"carol@example.com","phone":"1","address":"x","role":"admin"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", code, body)
	}
	if body["role"] != "admin" {
		t.Fatalf("admin-chosen role must be kept, got %v", body["role"])
	}
	if body["password"] != nil && body["password"] != "" {
		t.Fatalf("password must not leak: %v", body)
	}
}

func TestSignInWrongCredentials(t *testing.T) {
	app, _ := newTestApp([]User{{ID: "1", Username: "alice", Password: "pw"}})

	code, _ := postJSON(t, app, "/api/v1/sign-in", `{"username":"alice","password":"nope"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
