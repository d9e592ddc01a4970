package routes

import (
	"cast-match/internal/config"
	"cast-match/internal/delivery/http/handler"
	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/pkg/jwt"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	match  usecase.MatchingUsecase
	search usecase.SearchUsecase
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, match usecase.MatchingUsecase, search usecase.SearchUsecase) *Registry {
	return &Registry{
		cfg:    cfg,
		match:  match,
		search: search,
		health: handler.NewHealthHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

// registerV1 mounts the scoring and search endpoints. When an access secret
// is configured the whole group sits behind bearer-token verification.
func (r *Registry) registerV1(grp fiber.Router) {
	if r.cfg.Auth.AccessSecret != "" {
		authMw := middleware.NewAuthMiddleware(jwt.NewHMACVerifier(r.cfg.Auth.AccessSecret))
		grp = grp.Group("", authMw.Middleware())
	}

	handler.NewMatchHandler(r.match).RegisterRoutes(grp)
	handler.NewSearchHandler(r.search).RegisterRoutes(grp)
}
