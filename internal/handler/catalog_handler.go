package handler

import (
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the four lookup tables: brands, categories, generics
// and shelves
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	brand, err := h.service.CreateBrand(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Brand created", "data": brand})
}

func (h *CatalogHandler) GetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetAllBrands()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(brands)
}

func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid brand ID"))
	}
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	brand, err := h.service.UpdateBrand(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Brand updated", "data": brand})
}

func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid brand ID"))
	}
	if err := h.service.DeleteBrand(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Brand deleted"})
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	category, err := h.service.CreateCategory(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid category ID"))
	}
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	category, err := h.service.UpdateCategory(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid category ID"))
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func (h *CatalogHandler) CreateGeneric(c *fiber.Ctx) error {
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	generic, err := h.service.CreateGeneric(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Generic created", "data": generic})
}

func (h *CatalogHandler) GetGenerics(c *fiber.Ctx) error {
	generics, err := h.service.GetAllGenerics()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(generics)
}

func (h *CatalogHandler) UpdateGeneric(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid generic ID"))
	}
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	generic, err := h.service.UpdateGeneric(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Generic updated", "data": generic})
}

func (h *CatalogHandler) DeleteGeneric(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid generic ID"))
	}
	if err := h.service.DeleteGeneric(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Generic deleted"})
}

func (h *CatalogHandler) CreateShelve(c *fiber.Ctx) error {
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	shelve, err := h.service.CreateShelve(&req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Shelve created", "data": shelve})
}

func (h *CatalogHandler) GetShelves(c *fiber.Ctx) error {
	shelves, err := h.service.GetAllShelves()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(shelves)
}

func (h *CatalogHandler) UpdateShelve(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid shelve ID"))
	}
	var req service.CatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.InvalidInput("Invalid JSON"))
	}
	shelve, err := h.service.UpdateShelve(id, &req, getActor(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shelve updated", "data": shelve})
}

func (h *CatalogHandler) DeleteShelve(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, apperror.InvalidInput("Invalid shelve ID"))
	}
	if err := h.service.DeleteShelve(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shelve deleted"})
}
