package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"chrono/config"
	"chrono/infras/otel"
	"chrono/internal/domains/zonetime/model/dto"
	"chrono/shared/constant"
	"chrono/shared/logger"
	"chrono/shared/timezone"
	"context"
	"strconv"
	"time"
)

// ZoneTime answers the three time queries. ConvertTime and DateDiff return
// the library error untouched so the caller can surface its text.
type ZoneTime interface {
	CurrentTime(ctx context.Context, tz string) dto.CurrentTimeResponse
	ConvertTime(ctx context.Context, req dto.ConvertRequest) (string, error)
	DateDiff(ctx context.Context, req dto.DateDiffRequest) (string, error)
}

type serviceImpl struct {
	catalog  timezone.Catalog
	clock    timezone.Clock
	fallback string
	otel     otel.Otel
}

func New(catalog timezone.Catalog, clock timezone.Clock, cfg *config.Config, otel otel.Otel) ZoneTime {
	fallback := cfg.App.Timezone
	if fallback == "" {
		fallback = timezone.Fallback
	}

	return &serviceImpl{
		catalog:  catalog,
		clock:    clock,
		fallback: fallback,
		otel:     otel,
	}
}

func (s *serviceImpl) CurrentTime(ctx context.Context, tz string) dto.CurrentTimeResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentTime")
	defer scope.End()

	if !s.catalog.Contains(tz) {
		logger.Ctx(ctx).Debug().Str("timezone", tz).Str("fallback", s.fallback).Msg("unknown timezone, using fallback")

		tz = s.fallback
	}

	loc, err := s.catalog.Resolve(tz)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("timezone", tz).Msg("fallback timezone cannot be resolved, using UTC")

		tz, loc = "UTC", time.UTC
	}

	scope.SetAttribute("timezone", tz)

	return dto.CurrentTimeResponse{
		Zone: tz,
		Time: timezone.Format(s.clock.Now().In(loc)),
	}
}

func (s *serviceImpl) ConvertTime(ctx context.Context, req dto.ConvertRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConvertTime")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	wall, err := timezone.Parse(timezone.LayoutDotted, req.Date)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("date", req.Date).Msg("failed to parse date")

		return "", err //nolint:wrapcheck
	}

	from, err := s.catalog.Resolve(req.TZ)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to resolve source timezone")

		return "", err //nolint:wrapcheck
	}

	to, err := s.catalog.Resolve(req.TargetTZ)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to resolve target timezone")

		return "", err //nolint:wrapcheck
	}

	return timezone.Format(timezone.Localize(wall, from).In(to)), nil
}

func (s *serviceImpl) DateDiff(ctx context.Context, req dto.DateDiffRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DateDiff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	firstLoc, err := s.catalog.Resolve(req.FirstTZ)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to resolve first timezone")

		return "", err //nolint:wrapcheck
	}

	secondLoc, err := s.catalog.Resolve(req.SecondTZ)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to resolve second timezone")

		return "", err //nolint:wrapcheck
	}

	firstWall, err := timezone.Parse(timezone.LayoutDotted, req.FirstDate)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to parse first date")

		return "", err //nolint:wrapcheck
	}

	secondWall, err := timezone.Parse(timezone.LayoutClock12, req.SecondDate)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to parse second date")

		return "", err //nolint:wrapcheck
	}

	first := timezone.Localize(firstWall, firstLoc)
	second := timezone.Localize(secondWall, secondLoc)

	return strconv.FormatInt(timezone.DiffSeconds(first, second), 10), nil
}
