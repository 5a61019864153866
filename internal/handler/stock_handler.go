package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func (h *StockHandler) GetStocks(c *fiber.Ctx) error {
	stocks, err := h.service.GetAllStocks()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stocks)
}

func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid stock ID"))
	}

	stock, err := h.service.GetStockByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stock)
}

func (h *StockHandler) GetStockByProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("productId"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid product ID"))
	}

	stock, err := h.service.GetStockByProductID(productID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stock)
}

func (h *StockHandler) GetLowStocks(c *fiber.Ctx) error {
	stocks, err := h.service.GetLowStocks()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stocks)
}

func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid stock ID"))
	}

	var req service.UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	stock, err := h.service.UpdateStock(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock updated", "data": stock})
}
