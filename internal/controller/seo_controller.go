package controller

import (
	"github.com/gofiber/fiber/v2"

	"site-analytics-service/internal/service"
)

// SeoController exposes HTTP handlers for the search performance views.
type SeoController interface {
	Overview(c *fiber.Ctx) error
	Queries(c *fiber.Ctx) error
	Pages(c *fiber.Ctx) error
	Sitemaps(c *fiber.Ctx) error
}

type seoController struct {
	seo service.SeoService
}

// NewSeoController builds a SeoController.
func NewSeoController(svc service.SeoService) SeoController {
	return &seoController{seo: svc}
}

func (h *seoController) Overview(c *fiber.Ctx) error {
	days, err := queryDays(c, 28)
	if err != nil {
		return err
	}
	resp, err := h.seo.Overview(c.Context(), days)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *seoController) Queries(c *fiber.Ctx) error {
	days, err := queryDays(c, 28)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 20)
	if err != nil {
		return err
	}
	resp, err := h.seo.Queries(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *seoController) Pages(c *fiber.Ctx) error {
	days, err := queryDays(c, 28)
	if err != nil {
		return err
	}
	limit, err := queryLimit(c, 20)
	if err != nil {
		return err
	}
	resp, err := h.seo.Pages(c.Context(), days, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}

func (h *seoController) Sitemaps(c *fiber.Ctx) error {
	resp, err := h.seo.Sitemaps(c.Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(resp)
}
