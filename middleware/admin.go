package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"taphoa/pos"
	"taphoa/utils"
)

// AdminRequired guards admin routes. Two checks: a valid Bearer session
// token, and the gate actually being unlocked right now. A locked gate
// defers the inventory view onto the gate and answers with a challenge,
// so the client can raise the PIN pad and finish what the user started.
func AdminRequired(app *pos.App, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !app.IsAdmin() {
			app.Defer(pos.Command{Name: pos.CmdSwitchView, Arg: pos.ViewInventory})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":     "admin locked",
				"challenge": true,
			})
		}

		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		if err := utils.ParseAdminToken(token, secret); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		return c.Next()
	}
}
