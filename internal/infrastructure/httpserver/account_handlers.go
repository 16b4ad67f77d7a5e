package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
)

// submitAccountRequest serves POST /api/v1/account-request.
func (s *Server) submitAccountRequest(c echo.Context) error {
	var req account.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return writeResult(c, s.accountService.SubmitAccountRequest(c.Request().Context(), &req))
}

// listAccounts serves GET /api/v1/accounts?status=&search=&page=&limit=.
func (s *Server) listAccounts(c echo.Context) error {
	q := account.Query{
		Status: account.Status(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	}
	for name, dst := range map[string]*int{"page": &q.Page, "limit": &q.Limit} {
		if raw := c.QueryParam(name); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
			}
			*dst = n
		}
	}
	return writeResult(c, s.accountService.ListAccounts(c.Request().Context(), q))
}

// writeResult relays an upstream result. A successful JSON body is passed
// through untouched; failures are returned in the Result shape. Network errors
// become 502 since the result itself carries status 0.
func writeResult(c echo.Context, res api.Result) error {
	if res.Success {
		if res.Status == http.StatusNoContent {
			return c.NoContent(res.Status)
		}
		if len(res.Data) == 0 {
			return c.JSON(res.Status, map[string]bool{"success": true})
		}
		return c.JSONBlob(res.Status, res.Data)
	}
	status := res.Status
	if res.IsNetworkError() {
		status = http.StatusBadGateway
	}
	return c.JSON(status, res)
}
