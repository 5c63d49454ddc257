package api

import (
	"time"

	"github.com/ashdelaney/platewise/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName = "platewise_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
