package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	customer, err := h.service.CreateCustomer(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers(c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid customer ID"))
	}

	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid customer ID"))
	}

	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}

	customer, err := h.service.UpdateCustomer(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": customer})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid customer ID"))
	}

	if err := h.service.DeleteCustomer(id, getActor(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
