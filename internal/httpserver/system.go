package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/poetracikal/backend/internal/repo"
)

type SystemHTTP struct {
	Mongo *repo.Mongo

	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func (h *SystemHTTP) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "POETRACIKAL API ready"})
}

// Test is the diagnostic route. Unlike the rest of the service it swallows
// storage errors and reports them in the payload instead of failing the
// request.
func (h *SystemHTTP) Test(c echo.Context) error {
	resp := echo.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      setOrNot(h.DatabaseURLSet),
		"database_name":     setOrNot(h.DatabaseNameSet),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.Mongo == nil {
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.Mongo.Ping(ctx); err != nil {
		resp["database"] = truncate(err.Error(), 80)
		return c.JSON(http.StatusOK, resp)
	}

	resp["database"] = "connected"
	resp["connection_status"] = "connected"

	if names, err := h.Mongo.ListCollections(ctx); err == nil {
		resp["collections"] = names
	} else {
		resp["collections_error"] = truncate(err.Error(), 80)
	}

	return c.JSON(http.StatusOK, resp)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
