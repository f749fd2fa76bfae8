package zonetime

import (
	"chrono/infras/otel"
	"chrono/internal/domains/zonetime/model/dto"
	"chrono/internal/domains/zonetime/service"
	"chrono/shared/constant"
	"chrono/shared/logger"
	"chrono/shared/timezone"
	"chrono/shared/validator"
	"chrono/transport/http/response"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

const pageTemplate = "<html><body><h1>Time in %s: %s</h1></body></html>"

type Handler struct {
	service service.ZoneTime
	catalog timezone.Catalog
	otel    otel.Otel
}

func New(service service.ZoneTime, catalog timezone.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post(constant.RoutePathConvert, handler.ConvertTime)
	router.Post(constant.RoutePathDiff, handler.DateDiff)

	// The catch-all also serves "/", where the wildcard is empty.
	router.Get("/"+constant.RoutePathZone, handler.CurrentTime)
}

// CurrentTime renders the current time in the zone named by the path.
// @Summary Current time in a zone
// @Description Renders an HTML page with the current time. An empty path uses GMT; a path that is not a zone identifier is not found.
// @Tags ZoneTime
// @Produce html
// @Param zone path string false "IANA zone identifier, e.g. Europe/Moscow"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Not Found"
// @Router /{zone} [get]
func (handler *Handler) CurrentTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentTime")
	defer scope.End()

	zone := chi.URLParam(r, constant.RoutePathZone)

	// chi routes on RawPath when the request carried one, so the param is still escaped.
	var err error
	if r.URL.RawPath != "" {
		zone, err = url.PathUnescape(zone)
	}

	if err != nil || (zone != "" && !handler.catalog.Contains(zone)) {
		scope.AddEvent("Zone not in catalog")
		logger.Ctx(ctx).Debug().Str("path", r.URL.Path).Msg("path is not a timezone")

		response.WithNotFound(w)

		return
	}

	current := handler.service.CurrentTime(ctx, zone)

	scope.SetAttribute("timezone", current.Zone)

	response.WithHTML(w, http.StatusOK, fmt.Sprintf(pageTemplate, current.Zone, current.Time))
}

// ConvertTime converts a timestamp from one zone to another.
// @Summary Convert a timestamp between zones
// @Description Interprets date (MM.DD.YYYY HH:MM:SS) in tz and renders it in target_tz. Conversion failures are reported as the converted_time text with status 200.
// @Tags ZoneTime
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} response.Error
// @Router /api/v1/convert [post]
func (handler *Handler) ConvertTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertTime")
	defer scope.End()

	var raw json.RawMessage

	if err := validator.Decode(r.Body, &raw); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	var req dto.ConvertRequest

	converted, err := "", validator.Bind(raw, &req)
	if err == nil {
		converted, err = handler.service.ConvertTime(ctx, req)
	}

	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to convert time")

		converted = err.Error()
	} else {
		scope.AddEvent("Time converted successfully")
	}

	response.WithJSON(w, http.StatusOK, dto.ConvertResponse{ConvertedTime: converted})
}

// DateDiff returns the signed number of seconds between two zoned timestamps.
// @Summary Difference between two zoned timestamps
// @Description first_date uses MM.DD.YYYY HH:MM:SS, second_date uses hh:mmAM/PM YYYY-MM-DD. The result is second minus first in whole seconds. Failures are reported as the difference text with status 200.
// @Tags ZoneTime
// @Accept json
// @Produce json
// @Param request body dto.DateDiffRequest true "Difference request"
// @Success 200 {object} dto.DateDiffResponse
// @Failure 400 {object} response.Error
// @Router /api/v1/datediff [post]
func (handler *Handler) DateDiff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DateDiff")
	defer scope.End()

	var raw json.RawMessage

	if err := validator.Decode(r.Body, &raw); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	var req dto.DateDiffRequest

	difference, err := "", validator.Bind(raw, &req)
	if err == nil {
		difference, err = handler.service.DateDiff(ctx, req)
	}

	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to compute date difference")

		difference = err.Error()
	} else {
		scope.AddEvent("Date difference computed successfully")
	}

	response.WithJSON(w, http.StatusOK, dto.DateDiffResponse{Difference: difference})
}
