package controllers

import "github.com/gofiber/fiber/v2"

func (ct *Controller) GetReports(c *fiber.Ctx) error {
	return c.JSON(ct.App.Report())
}

func (ct *Controller) SwitchView(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	view, err := ct.App.SwitchView(input.Name)
	if err != nil {
		return warn(c, err)
	}
	return c.JSON(fiber.Map{"view": view})
}
