//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/infras/sqlite"
	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	checkInService "frontdesk/internal/domains/checkin/service"
	groupRepository "frontdesk/internal/domains/group/repository"
	guestRepository "frontdesk/internal/domains/guest/repository"
	roomRepository "frontdesk/internal/domains/room/repository"
	settingRepository "frontdesk/internal/domains/setting/repository"
	settingService "frontdesk/internal/domains/setting/service"
	stayService "frontdesk/internal/domains/stay/service"
	supervisorRepository "frontdesk/internal/domains/supervisor/repository"
	syncRepository "frontdesk/internal/domains/sync/repository"
	syncService "frontdesk/internal/domains/sync/service"
	authHandler "frontdesk/internal/handlers/auth"
	checkInHandler "frontdesk/internal/handlers/checkin"
	guestHandler "frontdesk/internal/handlers/guest"
	reservationHandler "frontdesk/internal/handlers/reservation"
	roomHandler "frontdesk/internal/handlers/room"
	settingHandler "frontdesk/internal/handlers/setting"
	stayHandler "frontdesk/internal/handlers/stay"
	syncHandler "frontdesk/internal/handlers/sync"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	roomRepository.New,
	guestRepository.New,
	bookingRepository.New,
	groupRepository.New,
	settingRepository.New,
	supervisorRepository.New,
	syncRepository.NewLocal,
	syncRepository.NewRemote,
)

var domains = wire.NewSet(
	settingService.New,
	stayService.New,
	checkInService.New,
	authService.New,
	syncService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	guestHandler.New,
	checkInHandler.New,
	reservationHandler.New,
	stayHandler.New,
	settingHandler.New,
	syncHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
