//go:build wireinject
// +build wireinject

package di

import (
	"dailytodo/config"
	"dailytodo/infras/otel"
	"dailytodo/infras/postgres"
	"dailytodo/infras/redis"
	"dailytodo/internal/handlers/index"
	todoHandler "dailytodo/internal/handlers/todo"
	"dailytodo/shared/cache"
	"dailytodo/transport/http"
	"dailytodo/transport/http/middleware"
	"dailytodo/transport/http/router"

	todoRepository "dailytodo/internal/domains/todo/repository"
	todoService "dailytodo/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	index.New,
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
