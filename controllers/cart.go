package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (ct *Controller) GetCart(c *fiber.Ctx) error {
	return c.JSON(ct.App.Cart())
}

func (ct *Controller) AddCartItem(c *fiber.Ctx) error {
	var input struct {
		ProductID int64 `json:"product_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := ct.App.AddToCart(input.ProductID); err != nil {
		return warn(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ct.App.Cart())
}

func (ct *Controller) UpdateCartItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid line index"})
	}

	var input struct {
		Delta int64 `json:"delta"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := ct.App.UpdateQty(index, input.Delta); err != nil {
		return warn(c, err)
	}
	return c.JSON(ct.App.Cart())
}

func (ct *Controller) ClearCart(c *fiber.Ctx) error {
	ct.App.ClearCart()
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

func (ct *Controller) Checkout(c *fiber.Ctx) error {
	tx, err := ct.App.Checkout()
	if err != nil {
		return warn(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Checkout complete",
		"transaction": tx,
	})
}
