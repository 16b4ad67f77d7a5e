package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
	"github.com/floodrisk/forms-data/go/internal/core/ports"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/httpserver/helpers"
)

// HeaderAreaSource tells clients whether an unfiltered listing came from the cache.
const HeaderAreaSource = "X-Area-Source"

type areaListResponse struct {
	Success bool        `json:"success"`
	Data    []area.Area `json:"data"`
}

type areaGroupsResponse struct {
	Success bool         `json:"success"`
	Data    []area.Group `json:"data"`
}

// listAreas serves GET /api/v1/areas?type=&parent_id=&exclude=.
func (s *Server) listAreas(c echo.Context) error {
	t, err := helpers.GetAreaTypeQuery(c, "type")
	if err != nil {
		return err
	}
	parents, err := helpers.GetAreaIDsQuery(c, "parent_id")
	if err != nil {
		return err
	}
	exclude, err := helpers.GetAreaIDsQuery(c, "exclude")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	q := ports.AreaQuery{Type: t, ParentIDs: parents, ExcludeIDs: exclude}
	if q.Type == "" && len(q.ParentIDs) == 0 && len(q.ExcludeIDs) == 0 {
		lookup := s.areaService.GetCachedAreas(ctx)
		helpers.SetAreaSource(c, lookup.Source)
		c.Response().Header().Set(HeaderAreaSource, lookup.Source.String())
		areas := lookup.Areas
		if areas == nil {
			areas = []area.Area{}
		}
		return c.JSON(http.StatusOK, areaListResponse{Success: true, Data: areas})
	}
	return c.JSON(http.StatusOK, areaListResponse{Success: true, Data: s.areaService.ListAreas(ctx, q)})
}

// getArea serves GET /api/v1/areas/:id.
func (s *Server) getArea(c echo.Context) error {
	id, err := helpers.GetAreaIDParam(c, "id")
	if err != nil {
		return err
	}
	a, ok := s.areaService.GetArea(c.Request().Context(), id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "area not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": a})
}

// groupAreas serves GET /api/v1/areas/groups?parent_ids=1,2.
func (s *Server) groupAreas(c echo.Context) error {
	parents, err := helpers.GetAreaIDsQuery(c, "parent_ids")
	if err != nil {
		return err
	}
	if len(parents) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "parent_ids is required")
	}
	groups := s.areaService.GroupChildren(c.Request().Context(), parents)
	return c.JSON(http.StatusOK, areaGroupsResponse{Success: true, Data: groups})
}

// refreshAreas serves DELETE /api/v1/areas/cache.
func (s *Server) refreshAreas(c echo.Context) error {
	if err := s.areaService.RefreshAreas(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "failed to refresh area cache")
	}
	if s.logger != nil {
		subject, _ := helpers.GetServiceSubjectRaw(c)
		s.logger.WithField("subject", subject).Info("area cache refreshed on request")
	}
	return c.NoContent(http.StatusNoContent)
}
