package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
)

// GetBearerToken extracts the token from an "Authorization: Bearer" header.
func GetBearerToken(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}

// GetAreaIDParam parses the named path parameter as an area id.
func GetAreaIDParam(c echo.Context, name string) (area.ID, error) {
	id, ok := area.ParseID(c.Param(name))
	if !ok {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

// GetAreaIDsQuery reads a list of area ids from a query parameter. Both
// repeated parameters (?id=1&id=2) and comma separated values (?id=1,2)
// are accepted. Any value that is not an id is a 400.
func GetAreaIDsQuery(c echo.Context, name string) ([]area.ID, error) {
	var out []area.ID
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, ok := area.ParseID(part)
			if !ok {
				return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s value %q", name, part))
			}
			out = append(out, id)
		}
	}
	return out, nil
}

// GetAreaTypeQuery reads an optional area type filter.
func GetAreaTypeQuery(c echo.Context, name string) (area.Type, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return "", nil
	}
	t := area.Type(raw)
	if !t.Valid() {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
	}
	return t, nil
}
