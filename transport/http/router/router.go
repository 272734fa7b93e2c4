package router

import (
	"dinoreserve/internal/handlers/auth"
	"dinoreserve/internal/handlers/health"
	"dinoreserve/internal/handlers/reservation"
	"dinoreserve/internal/handlers/restaurant"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health      health.Handler
	Auth        auth.Handler
	Restaurant  restaurant.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Restaurant.Router(router)
	r.DomainHandlers.Reservation.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
