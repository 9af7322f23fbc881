package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taphoa/pos"
	"taphoa/utils"
)

// EnterPinDigit feeds one digit into the gate. When the fourth digit
// unlocks it, the response carries a session token for the admin routes
// and whatever deferred command the unlock resumed.
func (ct *Controller) EnterPinDigit(c *fiber.Ctx) error {
	var input struct {
		Digit string `json:"digit"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	res, err := ct.App.EnterPinDigit(input.Digit)
	if err != nil {
		if errors.Is(err, pos.ErrWrongPin) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":  "wrong PIN",
				"result": res,
			})
		}
		return warn(c, err)
	}

	if res.Unlocked && res.Completed {
		token, err := utils.GenerateAdminToken(ct.Cfg.TokenSecret)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{
			"message": "Admin unlocked",
			"token":   token,
			"result":  res,
			"view":    ct.App.View(),
		})
	}

	return c.JSON(fiber.Map{"result": res})
}

func (ct *Controller) ClearPin(c *fiber.Ctx) error {
	ct.App.ClearPin()
	return c.JSON(fiber.Map{"message": "PIN cleared"})
}

// ToggleAdmin locks an unlocked gate and sends the user back to the POS
// view. On a locked gate it answers with a challenge instead.
func (ct *Controller) ToggleAdmin(c *fiber.Ctx) error {
	unlocked, err := ct.App.ToggleAdmin()
	if err != nil {
		return warn(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Admin locked",
		"unlocked": unlocked,
		"view":     ct.App.View(),
	})
}
