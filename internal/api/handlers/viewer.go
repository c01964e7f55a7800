package handlers

import (
	"Recipe-Book/domain"

	"github.com/gofiber/fiber/v2"
)

// viewerFrom reads the identity set by the auth middlewares.
func viewerFrom(c *fiber.Ctx) domain.Viewer {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return domain.Anonymous()
	}
	return domain.AuthenticatedViewer(userID)
}
