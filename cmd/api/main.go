package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/sirupsen/logrus"

	"github.com/naruebet/storefront-admin/internal/category"
	"github.com/naruebet/storefront-admin/internal/config"
	"github.com/naruebet/storefront-admin/internal/datastore"
	"github.com/naruebet/storefront-admin/internal/interaction"
	"github.com/naruebet/storefront-admin/internal/middleware"
	"github.com/naruebet/storefront-admin/internal/product"
	"github.com/naruebet/storefront-admin/internal/session"
	"github.com/naruebet/storefront-admin/internal/stats"
	"github.com/naruebet/storefront-admin/internal/user"
)

// main wires dependencies and starts the HTTP server. All persistence lives
// in the external REST data store; this process is stateless.
func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if !cfg.IsProd {
		logrus.SetLevel(logrus.DebugLevel)
	}

	store := datastore.NewClient(cfg.StoreURL, cfg.StoreTimeout)

	categoryRepo := category.NewRESTRepository(store)
	categoryHandler := category.NewHandler(category.NewService(categoryRepo))

	productRepo := product.NewRESTRepository(store)
	productHandler := product.NewHandler(product.NewService(productRepo, categoryRepo))

	userRepo := user.NewRESTRepository(store)
	userHandler := user.NewHandler(user.NewService(userRepo), cfg.JWTSecret)

	interactionRepo := interaction.NewRESTRepository(store)
	interactionHandler := interaction.NewHandler(interaction.NewService(interactionRepo))

	statsHandler := stats.NewHandler(stats.NewEngine(interactionRepo, productRepo, userRepo))

	app := fiber.New()
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(logrus.StandardLogger()))

	// catalog reads and the auth endpoints stay public
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	interactionHandler.RegisterPublicRoutes(app, session.Optional(cfg.JWTSecret))

	// everything registered from here on requires a session token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	interactionHandler.RegisterProtectedRoutes(app)

	// admin routes additionally check the role frozen into the session
	admin := app.Group("/api/v1/admin", session.RequireAdmin())
	productHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)
	statsHandler.RegisterAdminRoutes(admin)

	logrus.Infof("storefront admin api listening on %s (store %s)", cfg.Addr, cfg.StoreURL)
	if err := app.Listen(cfg.Addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
