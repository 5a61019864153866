package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	payments, err := h.service.GetAllPayments(c.Query("purchase_billid"), c.Query("sell_billid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid payment ID"))
	}

	payment, err := h.service.GetPaymentByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payment)
}
