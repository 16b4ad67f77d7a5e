package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

// AreaService answers area questions from the cached hierarchy. An
// unavailable lookup is logged and treated as an empty hierarchy.
type AreaService struct {
	cache   ports.AreaCache
	fetcher ports.AreaFetcher
	logger  *logrus.Logger
}

func NewAreaService(cache ports.AreaCache, fetcher ports.AreaFetcher, logger *logrus.Logger) ports.AreaService {
	return &AreaService{cache: cache, fetcher: fetcher, logger: logger}
}

func (s *AreaService) GetCachedAreas(ctx context.Context) ports.AreaLookup {
	lookup := s.cache.GetCached(ctx, s.fetcher.FetchAreas)
	if s.logger != nil {
		entry := s.logger.WithFields(logrus.Fields{"source": lookup.Source.String(), "count": len(lookup.Areas)})
		if !lookup.OK() {
			entry.Warn("areas unavailable")
		} else {
			entry.Debug("areas loaded")
		}
	}
	return lookup
}

func (s *AreaService) areas(ctx context.Context) []area.Area {
	lookup := s.GetCachedAreas(ctx)
	if !lookup.OK() {
		return []area.Area{}
	}
	return lookup.Areas
}

// ListAreas applies q's filters in order: type, parents, exclusions. Zero-valued
// fields do not filter.
func (s *AreaService) ListAreas(ctx context.Context, q ports.AreaQuery) []area.Area {
	out := s.areas(ctx)
	if q.Type != "" {
		out = area.ByType(out, q.Type)
	}
	if len(q.ParentIDs) > 0 {
		out = area.ByParentIDs(out, q.ParentIDs)
	}
	if len(q.ExcludeIDs) > 0 {
		out = area.ExcludingIDs(out, q.ExcludeIDs)
	}
	return out
}

func (s *AreaService) GetArea(ctx context.Context, id area.ID) (area.Area, bool) {
	return area.ByID(s.areas(ctx), id)
}

func (s *AreaService) GroupChildren(ctx context.Context, parentIDs []area.ID) []area.Group {
	return area.GroupByParents(s.areas(ctx), parentIDs)
}

// RefreshAreas drops the cached list and loads it again.
func (s *AreaService) RefreshAreas(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("failed to invalidate area cache")
		}
		return err
	}
	lookup := s.GetCachedAreas(ctx)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"source": lookup.Source.String(), "count": len(lookup.Areas)}).Info("area cache refreshed")
	}
	return nil
}

func (s *AreaService) CacheState() ports.CacheState {
	return s.cache.State()
}
