package router

import (
	"innkeep/internal/handlers/application"
	"innkeep/internal/handlers/auth"
	"innkeep/internal/handlers/health"
	"innkeep/internal/handlers/hotel"
	"innkeep/internal/handlers/order"
	"innkeep/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Application application.Handler
	Hotel       hotel.Handler
	Room        room.Handler
	Order       order.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Application.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
