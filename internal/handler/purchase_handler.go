package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	purchase, err := h.service.CreatePurchase(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Purchase created", "data": purchase})
}

func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetAllPurchases(c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchases)
}

func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	purchase, err := h.service.GetPurchaseByBillID(c.Params("billid"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}

func (h *PurchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	var req service.UpdatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	purchase, err := h.service.UpdatePurchase(c.Params("billid"), &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Purchase updated", "data": purchase})
}

func (h *PurchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	if err := h.service.DeletePurchase(c.Params("billid"), getActor(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Purchase deleted"})
}

func (h *PurchaseHandler) DuePayment(c *fiber.Ctx) error {
	var req service.DuePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	purchase, err := h.service.DuePayment(c.Params("billid"), &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Due payment recorded", "data": purchase})
}

func (h *PurchaseHandler) RefundPurchase(c *fiber.Ctx) error {
	var req service.RefundPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	purchase, err := h.service.RefundPurchase(c.Params("billid"), &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Purchase refunded", "data": purchase})
}
