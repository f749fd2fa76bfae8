package http

import (
	"chrono/config"
	otelMocks "chrono/infras/otel/mocks"
	"chrono/internal/domains/zonetime/service"
	"chrono/internal/handlers/zonetime"
	"chrono/shared/constant"
	"chrono/shared/timezone"
	"chrono/transport/http/middleware"
	"chrono/transport/http/router"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer(env string) *HTTP {
	cfg := &config.Config{}
	cfg.Server.Env = env
	cfg.App.Name = "chrono"
	cfg.App.Timezone = timezone.Fallback

	otel := otelMocks.NewOtel()
	catalog := timezone.NewCatalog(cfg)
	svc := service.New(catalog, timezone.NewClock(), cfg, otel)

	r := router.New(router.DomainHandlers{
		ZoneTime: zonetime.New(svc, catalog, otel),
	}, cfg)

	return New(cfg, r, middleware.NewAppMiddleware(otel, cfg), otel)
}

func TestHTTP_ServeHTTP(t *testing.T) {
	h := newTestServer(constant.ServerEnvProduction)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Europe/Moscow", nil))

	assert.Equal(t, ServerStateReady, h.State())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Time in Europe/Moscow: ")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHTTP_NotFound(t *testing.T) {
	h := newTestServer(constant.ServerEnvProduction)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/convert", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
}

func TestHTTP_RefusesDuringShutdown(t *testing.T) {
	h := newTestServer(constant.ServerEnvProduction)
	h.setup()

	h.state.Store(int32(ServerStateInGracePeriod))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}

func TestHTTP_Shutdown(t *testing.T) {
	for _, env := range []string{constant.ServerEnvProduction, constant.ServerEnvDevelopment} {
		t.Run(env, func(t *testing.T) {
			h := newTestServer(env)
			h.setup()

			h.shutdown(context.Background())

			assert.Equal(t, ServerStateInCleanupPeriod, h.State())

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}
