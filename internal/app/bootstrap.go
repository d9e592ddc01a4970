package app

import (
	"fmt"
	"strings"

	"cast-match/internal/config"
	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/delivery/http/routes"
	"cast-match/internal/infrastructure/cache"
	"cast-match/internal/search"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap assembles the Fiber app with its middleware chain, usecases and
// routes. The returned cleanup closes the cache connection.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	redisCache := cache.NewRedis(cfg.Redis, logger)

	matchUC := usecase.NewMatchingUsecase(redisCache, cfg.Redis.TTL)

	var matcher search.Matcher = search.NewFuzzyIndex()
	if cfg.Search.Engine == config.SearchEngineRelevance {
		matcher = search.NewRelevanceMatcher()
	}
	searchUC := usecase.NewSearchUsecase(matcher)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(cfg, matchUC, searchUC).Register(f)

	cleanup := func() error { return redisCache.Close() }
	return &App{Fiber: f}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
