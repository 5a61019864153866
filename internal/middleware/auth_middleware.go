package middleware

import (
	"strings"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/pkg/apperror"
	"go-pharma-pos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// reject sends the standard error body used by the handlers, so middleware
// failures stay machine-distinguishable too.
func reject(c *fiber.Ctx, err *apperror.Error) error {
	return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{"error": fiber.Map{
		"kind":    err.Kind,
		"message": err.Message,
	}})
}

// RequireAuth validates the Bearer JWT and sets the actor identity in context
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return reject(c, apperror.Unauthenticated("Missing authorization token"))
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return reject(c, apperror.Unauthenticated("Invalid authorization format. Use: Bearer <token>"))
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return reject(c, apperror.Unauthenticated("Invalid or expired token"))
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)
		c.Locals("user_permissions", claims.Permissions)

		return c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
// super_admin always passes.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return reject(c, apperror.Unauthorized("No role found"))
		}
		if model.Role(role) == model.RoleSuperAdmin {
			return c.Next()
		}
		for _, allowed := range roles {
			if model.Role(role) == allowed {
				return c.Next()
			}
		}
		return reject(c, apperror.Unauthorized("Forbidden: insufficient role"))
	}
}

// RequirePermission checks that the token carries the given permission code.
// super_admin bypasses permission checks entirely.
func RequirePermission(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := c.Locals("user_role").(string); ok && model.Role(role) == model.RoleSuperAdmin {
			return c.Next()
		}

		permissions, ok := c.Locals("user_permissions").([]string)
		if !ok {
			return reject(c, apperror.Unauthorized("No permissions found"))
		}
		for _, p := range permissions {
			if p == code {
				return c.Next()
			}
		}
		return reject(c, apperror.Unauthorized("Forbidden: requires '"+code+"' permission"))
	}
}
