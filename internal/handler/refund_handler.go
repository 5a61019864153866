package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type RefundHandler struct {
	service service.RefundService
}

func NewRefundHandler(s service.RefundService) *RefundHandler {
	return &RefundHandler{service: s}
}

func (h *RefundHandler) CreateOrderRefund(c *fiber.Ctx) error {
	var req service.CreateOrderRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	order, err := h.service.CreateOrderRefund(c.Params("billid"), &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order refunded", "data": order})
}

func (h *RefundHandler) GetRefunds(c *fiber.Ctx) error {
	refunds, err := h.service.GetAllRefunds(c.Query("purchase_billid"), c.Query("sell_billid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(refunds)
}

func (h *RefundHandler) GetRefund(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid refund ID"))
	}

	refund, err := h.service.GetRefundByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(refund)
}

func (h *RefundHandler) GetRefundTotals(c *fiber.Ctx) error {
	totals, err := h.service.GetRefundTotals(c.Query("purchase_billid"), c.Query("sell_billid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(totals)
}
