package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"simaset_backend/internals/workflows"
)

// GetUserIDFromToken mengambil user_id yang disimpan AuthMiddleware di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID di token tidak valid")
	}
	return id, nil
}

// GetRoleFromToken mengambil role yang disimpan AuthMiddleware di Locals.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return role, nil
}

// GetActorFromToken merangkai identitas aktor untuk dipassing ke engine.
func GetActorFromToken(c *fiber.Ctx) (workflows.Actor, error) {
	id, err := GetUserIDFromToken(c)
	if err != nil {
		return workflows.Actor{}, err
	}
	role, err := GetRoleFromToken(c)
	if err != nil {
		return workflows.Actor{}, err
	}
	return workflows.Actor{ID: id, Role: role}, nil
}

// ParseUUIDParam mem-parse path param menjadi uuid dengan pesan konsisten.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}
