package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// ownerID reads the authenticated user id set by the JWT middleware.
func ownerID(c *fiber.Ctx) uuid.UUID {
	s, _ := c.Locals("userId").(string)
	id, _ := uuid.Parse(s)
	return id
}
