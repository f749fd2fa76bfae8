//go:build wireinject
// +build wireinject

package di

import (
	"chrono/config"
	"chrono/infras/otel"
	zoneTimeHandler "chrono/internal/handlers/zonetime"
	"chrono/shared/timezone"
	"chrono/transport/http"
	"chrono/transport/http/middleware"
	"chrono/transport/http/router"

	zoneTimeService "chrono/internal/domains/zonetime/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	timezone.NewCatalog,
	timezone.NewClock,
)

var zoneTimeDomain = wire.NewSet(
	zoneTimeService.New,
)

var domains = wire.NewSet(
	zoneTimeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	zoneTimeHandler.New,
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
