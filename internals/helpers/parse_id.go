package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a path param and rejects malformed ids before any
// query runs.
func ParseUUIDParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid id format")
	}
	return id.String(), nil
}
