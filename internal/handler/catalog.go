package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eventsphere/internal/service"
)

// CatalogHandler serves the public, read-only catalog.
type CatalogHandler struct {
	Catalog *service.CatalogService
	Log     *slog.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Log: log}
}

// Events lists all events, or those of one category with ?category=.
func (h *CatalogHandler) Events(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	if cat := c.QueryParam("category"); cat != "" {
		events, err := h.Catalog.EventsByCategory(ctx, cat)
		if err != nil {
			return internalError(c, h.Log, "list events", err)
		}
		return c.JSON(http.StatusOK, events)
	}
	events, err := h.Catalog.AllEvents(ctx)
	if err != nil {
		return internalError(c, h.Log, "list events", err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *CatalogHandler) Featured(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	events, err := h.Catalog.FeaturedEvents(ctx)
	if err != nil {
		return internalError(c, h.Log, "list featured events", err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *CatalogHandler) Event(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	ev, ok, err := h.Catalog.EventByID(ctx, c.Param("id"))
	if err != nil {
		return internalError(c, h.Log, "get event", err)
	}
	if !ok {
		return message(c, http.StatusNotFound, "Event not found")
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *CatalogHandler) Testimonials(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	out, err := h.Catalog.Testimonials(ctx)
	if err != nil {
		return internalError(c, h.Log, "list testimonials", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Services(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	out, err := h.Catalog.Services(ctx)
	if err != nil {
		return internalError(c, h.Log, "list services", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Team(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	out, err := h.Catalog.Team(ctx)
	if err != nil {
		return internalError(c, h.Log, "list team", err)
	}
	return c.JSON(http.StatusOK, out)
}
