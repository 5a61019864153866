package handler

import (
	"time"

	"go-pharma-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// dateRange resolves the range query param to a start/end pair, default 7 days
func dateRange(c *fiber.Ctx) (time.Time, time.Time) {
	now := time.Now()
	switch c.Query("range", "7d") {
	case "1m":
		return now.AddDate(0, -1, 0), now
	case "3m":
		return now.AddDate(0, -3, 0), now
	case "6m":
		return now.AddDate(0, -6, 0), now
	case "12m":
		return now.AddDate(0, -12, 0), now
	default:
		return now.AddDate(0, 0, -7), now
	}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	startDate, endDate := dateRange(c)
	movement, err := h.service.GetStockMovement(startDate, endDate)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(movement)
}

func (h *DashboardHandler) GetFinancialSummary(c *fiber.Ctx) error {
	startDate, endDate := dateRange(c)
	summary, err := h.service.GetFinancialSummary(startDate, endDate)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
