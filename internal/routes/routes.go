package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Health        *handlers.HealthHandler
	Users         *handlers.UserHandler
	UserAddress   *handlers.AddressHandler
	Sellers       *handlers.SellerHandler
	SellerAddress *handlers.AddressHandler
	Categories    *handlers.CategoryHandler
	Products      *handlers.ProductHandler
}

// Options tunes per-IP rate limits. A zero Max disables that limiter.
type Options struct {
	APIMax  int
	AuthMax int
}

func DefaultOptions() Options {
	return Options{APIMax: 60, AuthMax: 10}
}

func Setup(app *fiber.App, cfg *config.Config, store *repository.Store, h Handlers, opts Options) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	if opts.APIMax > 0 {
		api.Use(rateLimit(opts.APIMax))
	}

	api.Get("/health", h.Health.Check)

	jwt := middleware.JWTProtected(cfg)
	authed := []fiber.Handler{jwt, middleware.LoadActor(store)}
	seller := with(authed, middleware.SellerRequired())
	admin := with(authed, middleware.AdminRequired(cfg))

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	if opts.AuthMax > 0 {
		auth.Use(rateLimit(opts.AuthMax))
	}
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", with(authed, h.Auth.Logout)...)

	users := api.Group("/users")
	users.Post("/", h.Users.Create)
	users.Get("/", with(admin, h.Users.List)...)
	users.Get("/me", with(authed, h.Users.Me)...)
	users.Get("/address", with(authed, h.UserAddress.List)...)
	users.Post("/address", with(authed, h.UserAddress.Create)...)
	users.Get("/address/:id", with(authed, h.UserAddress.Get)...)
	users.Patch("/address/:id", with(authed, h.UserAddress.Update)...)
	users.Delete("/address/:id", with(authed, h.UserAddress.Delete)...)
	users.Get("/:id", with(authed, h.Users.Get)...)
	users.Delete("/:id", with(authed, h.Users.Delete)...)

	sellers := api.Group("/sellers")
	sellers.Get("/address", with(seller, h.SellerAddress.List)...)
	sellers.Post("/address", with(seller, h.SellerAddress.Create)...)
	sellers.Get("/address/:id", with(seller, h.SellerAddress.Get)...)
	sellers.Patch("/address/:id", with(seller, h.SellerAddress.Update)...)
	sellers.Delete("/address/:id", with(seller, h.SellerAddress.Delete)...)
	sellers.Get("/", h.Sellers.List)
	sellers.Post("/", with(authed, h.Sellers.Create)...)
	sellers.Get("/:id", h.Sellers.Get)
	sellers.Get("/:id/products", h.Sellers.Products)
	sellers.Patch("/:id", with(authed, h.Sellers.Update)...)
	sellers.Delete("/:id", with(authed, h.Sellers.Delete)...)

	api.Get("/categories", h.Categories.List)

	products := api.Group("/products")
	products.Get("/", h.Products.List)
	products.Get("/new", h.Products.New)
	products.Get("/featured", h.Products.Featured)
	products.Get("/seller", with(seller, h.Products.Mine)...)
	products.Post("/", with(seller, h.Products.Create)...)
	products.Get("/:id", h.Products.Get)
	products.Patch("/:id", with(seller, h.Products.Update)...)
	products.Delete("/:id", with(seller, h.Products.Delete)...)
}

func with(chain []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

func rateLimit(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               perMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
