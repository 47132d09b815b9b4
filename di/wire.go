//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/permissions"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	"github.com/google/wire"

	applicationRepository "innkeep/internal/domains/application/repository"
	applicationService "innkeep/internal/domains/application/service"
	authService "innkeep/internal/domains/auth/service"
	hotelRepository "innkeep/internal/domains/hotel/repository"
	hotelService "innkeep/internal/domains/hotel/service"
	orderRepository "innkeep/internal/domains/order/repository"
	orderService "innkeep/internal/domains/order/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"
	userRepository "innkeep/internal/domains/user/repository"

	applicationHandler "innkeep/internal/handlers/application"
	authHandler "innkeep/internal/handlers/auth"
	healthHandler "innkeep/internal/handlers/health"
	hotelHandler "innkeep/internal/handlers/hotel"
	orderHandler "innkeep/internal/handlers/order"
	roomHandler "innkeep/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var applicationDomain = wire.NewSet(
	applicationRepository.New,
	applicationService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var domains = wire.NewSet(
	authDomain,
	applicationDomain,
	hotelDomain,
	roomDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	applicationHandler.New,
	hotelHandler.New,
	roomHandler.New,
	orderHandler.New,
	healthHandler.New,
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
