package handler

import (
	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/service"
	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// getActor builds the acting-user identity from the JWT context set by the
// auth middleware
func getActor(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: "system", Name: "Unknown"}
	if v, ok := c.Locals("user_id").(string); ok {
		actor.ID = v
	}
	if v, ok := c.Locals("user_name").(string); ok {
		actor.Name = v
	}
	if v, ok := c.Locals("user_email").(string); ok {
		actor.Email = v
	}
	if v, ok := c.Locals("user_role").(string); ok {
		actor.Role = model.Role(v)
	}
	return actor
}

// fail maps a service error to its status code and the standard error body
// {"error": {"kind": ..., "message": ...}}. Unclassified failures report as
// internal without leaking the underlying message.
func fail(c *fiber.Ctx, err error) error {
	status := apperror.HTTPStatus(err)
	message := err.Error()
	if status == 500 {
		message = "Internal Server Error"
	}
	return c.Status(status).JSON(fiber.Map{"error": fiber.Map{
		"kind":    apperror.KindOf(err),
		"message": message,
	}})
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
