package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req service.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	expense, err := h.service.CreateExpense(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Expense created", "data": expense})
}

func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.service.GetAllExpenses(c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expenses)
}

func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid expense ID"))
	}

	expense, err := h.service.GetExpenseByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid expense ID"))
	}

	var req service.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	expense, err := h.service.UpdateExpense(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense updated", "data": expense})
}

func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid expense ID"))
	}

	if err := h.service.DeleteExpense(id, getActor(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}
