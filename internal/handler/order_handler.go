package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	order, err := h.service.CreateOrder(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByBillID(c.Params("billid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) GetOrderItems(c *fiber.Ctx) error {
	items, err := h.service.GetOrderItems(c.Params("billid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

func (h *OrderHandler) DuePayment(c *fiber.Ctx) error {
	var req service.DuePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	order, err := h.service.DuePayment(c.Params("billid"), &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Due payment recorded", "data": order})
}
