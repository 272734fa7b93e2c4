//go:build wireinject
// +build wireinject

package di

import (
	"dinoreserve/config"
	"dinoreserve/infras/jwt"
	"dinoreserve/infras/kafka"
	"dinoreserve/infras/otel"
	"dinoreserve/infras/postgres"
	"dinoreserve/infras/redis"
	"dinoreserve/permissions"
	"dinoreserve/shared/cache"
	"dinoreserve/transport/http"
	"dinoreserve/transport/http/middleware"
	"dinoreserve/transport/http/router"

	"github.com/google/wire"

	authService "dinoreserve/internal/domains/auth/service"
	reservationRepository "dinoreserve/internal/domains/reservation/repository"
	reservationService "dinoreserve/internal/domains/reservation/service"
	restaurantRepository "dinoreserve/internal/domains/restaurant/repository"
	restaurantService "dinoreserve/internal/domains/restaurant/service"
	tableRepository "dinoreserve/internal/domains/table/repository"
	tableService "dinoreserve/internal/domains/table/service"
	userRepository "dinoreserve/internal/domains/user/repository"

	authHandler "dinoreserve/internal/handlers/auth"
	healthHandler "dinoreserve/internal/handlers/health"
	reservationHandler "dinoreserve/internal/handlers/reservation"
	restaurantHandler "dinoreserve/internal/handlers/restaurant"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	restaurantDomain,
	tableDomain,
	reservationDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	restaurantHandler.New,
	reservationHandler.New,
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
