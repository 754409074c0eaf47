package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-property-listing/internal/config"
	"go-property-listing/internal/handler"
	"go-property-listing/internal/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	Search   *handler.SearchHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.Post("/refresh", h.Auth.Refresh)
			auth.With(authMiddleware.RequireAuth).Post("/logout", h.Auth.Logout)
			auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
		})

		api.Route("/users", func(users chi.Router) {
			users.Post("/signup", h.User.Register)
			users.With(authMiddleware.RequireAuth, authMiddleware.RequireRoles("admin", "super_admin")).Get("/", h.User.List)
			users.With(authMiddleware.RequireAuth).Get("/{id}", h.User.Get)
			users.With(authMiddleware.RequireAuth).Patch("/{id}", h.User.Update)
			users.With(authMiddleware.RequireAuth).Delete("/{id}", h.User.Delete)
		})

		api.Route("/properties", func(properties chi.Router) {
			properties.Get("/", h.Property.List)
			properties.Get("/search", h.Search.Search)
			properties.With(authMiddleware.RequireAuth).Post("/", h.Property.Create)
			properties.With(authMiddleware.RequireAuth).Get("/me", h.Property.ListMine)
			properties.Get("/{id}", h.Property.Get)
		})
	})

	return r
}
