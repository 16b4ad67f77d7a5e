package helpers

import (
	"github.com/labstack/echo/v4"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
)

type ctxKey string

const (
	keyAreaSource   ctxKey = "area_source"
	keyServiceToken ctxKey = "service_subject"
)

// SetAreaSource records which path served the areas for this request, for request logging.
func SetAreaSource(c echo.Context, s ports.AreaSource) { c.Set(string(keyAreaSource), s) }
func GetAreaSourceRaw(c echo.Context) (ports.AreaSource, bool) {
	v := c.Get(string(keyAreaSource))
	s, ok := v.(ports.AreaSource)
	return s, ok
}

func SetServiceSubject(c echo.Context, subject string) { c.Set(string(keyServiceToken), subject) }
func GetServiceSubjectRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyServiceToken))
	s, ok := v.(string)
	return s, ok
}
