package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/checkin"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/reservation"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/setting"
	"frontdesk/internal/handlers/stay"
	"frontdesk/internal/handlers/sync"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Room        room.Handler
	Guest       guest.Handler
	CheckIn     checkin.Handler
	Reservation reservation.Handler
	Stay        stay.Handler
	Setting     setting.Handler
	Sync        sync.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.CheckIn.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Stay.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
