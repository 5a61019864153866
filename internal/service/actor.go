package service

import "go-pharma-pos/internal/model"

// Actor identifies the authenticated user performing a mutation. Handlers
// build it from the token claims so services can stamp audit fields and
// enforce role guards without touching fiber.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  model.Role
}
