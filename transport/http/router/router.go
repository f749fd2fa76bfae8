package router

import (
	"chrono/config"
	_ "chrono/docs" // registers the swagger document
	"chrono/internal/handlers/zonetime"
	"chrono/shared/constant"
	"chrono/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	ZoneTime zonetime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Config         *config.Config
}

// SetupRoutes registers the route table. Anything unmatched, including a
// known path with the wrong method, is answered with a plain 404.
func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	if r.Config.App.Swagger.Enable {
		router.Get(constant.RoutePathSwagger, httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.DomainHandlers.ZoneTime.Router(router)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	response.WithNotFound(w)
}

func New(domainHandlers DomainHandlers, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Config:         cfg,
	}
}
