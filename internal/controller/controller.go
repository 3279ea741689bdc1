package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"site-analytics-service/internal/report"
	"site-analytics-service/internal/service"
)

// AnalyticsController exposes HTTP handlers for the reporting views.
type AnalyticsController interface {
	Health(c *fiber.Ctx) error
	Stats(c *fiber.Ctx) error
	Leads(c *fiber.Ctx) error
	PageviewsSeries(c *fiber.Ctx) error
	TopPages(c *fiber.Ctx) error
	Devices(c *fiber.Ctx) error
	Channels(c *fiber.Ctx) error
	Referrers(c *fiber.Ctx) error
	Countries(c *fiber.Ctx) error
	Cities(c *fiber.Ctx) error
	Browsers(c *fiber.Ctx) error
	OperatingSystems(c *fiber.Ctx) error
	Events(c *fiber.Ctx) error
	LandingPages(c *fiber.Ctx) error
	ExitPages(c *fiber.Ctx) error
	Realtime(c *fiber.Ctx) error
}

type analyticsController struct {
	analytics service.AnalyticsService
}

// NewAnalyticsController builds an AnalyticsController.
func NewAnalyticsController(svc service.AnalyticsService) AnalyticsController {
	return &analyticsController{analytics: svc}
}

const (
	maxDays  = 365
	maxLimit = 50
)

// queryInt parses a bounded integer query parameter, falling back to def when
// absent.
func queryInt(c *fiber.Ctx, name string, def, min, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("%s must be an integer between %d and %d", name, min, max))
	}
	return v, nil
}

func queryDays(c *fiber.Ctx, def int) (int, error) {
	return queryInt(c, "days", def, 1, maxDays)
}

func queryLimit(c *fiber.Ctx, def int) (int, error) {
	return queryInt(c, "limit", def, 1, maxLimit)
}

// respondError maps core errors onto HTTP statuses: configuration problems
// stay 500, upstream query failures surface as 502 carrying the upstream
// message.
func respondError(err error) error {
	var cfgErr *report.ConfigError
	if errors.As(err, &cfgErr) {
		return fiber.NewError(fiber.StatusInternalServerError, cfgErr.Message)
	}
	var queryErr *report.QueryError
	if errors.As(err, &queryErr) {
		return fiber.NewError(fiber.StatusBadGateway, queryErr.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch analytics data")
}

func (h *analyticsController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "site-analytics-service",
		"version": "1.0.0",
	})
}

func (h *analyticsController) Stats(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Stats(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Leads(c *fiber.Ctx) error {
	days, err := queryDays(c, 28)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Leads(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) PageviewsSeries(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.PageviewsSeries(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) TopPages(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 10)
	if err != nil {
		return err
	}
	resp, err := h.analytics.TopPages(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Devices(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Devices(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Channels(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Channels(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Referrers(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 15)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Referrers(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Countries(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 20)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Countries(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Cities(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 20)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Cities(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Browsers(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Browsers(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) OperatingSystems(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.OperatingSystems(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Events(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	resp, err := h.analytics.Events(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) LandingPages(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 10)
	if err != nil {
		return err
	}
	resp, err := h.analytics.LandingPages(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) ExitPages(c *fiber.Ctx) error {
	days, err := queryDays(c, 7)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 10)
	if err != nil {
		return err
	}
	resp, err := h.analytics.ExitPages(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *analyticsController) Realtime(c *fiber.Ctx) error {
	resp, err := h.analytics.Realtime(c.Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}
