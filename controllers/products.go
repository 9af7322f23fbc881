package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taphoa/pos"
)

// ====================
// Public catalog
// ====================

func (ct *Controller) GetProducts(c *fiber.Ctx) error {
	search := c.Query("search", "")
	category := c.Query("category", ct.App.SelectedCategory())

	return c.JSON(fiber.Map{"products": ct.App.Catalog(search, category)})
}

func (ct *Controller) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": ct.App.Categories(),
		"selected":   ct.App.SelectedCategory(),
	})
}

func (ct *Controller) SelectCategory(c *fiber.Ctx) error {
	var input struct {
		Category string `json:"category"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	ct.App.SelectCategory(input.Category)
	return c.JSON(fiber.Map{"selected": input.Category})
}

// ====================
// Admin catalog mutations (behind the gate)
// ====================

func (ct *Controller) CreateProduct(c *fiber.Ctx) error {
	var input pos.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	p := ct.App.CreateProduct(input)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product saved", "product": p})
}

func (ct *Controller) UpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var input pos.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	p, err := ct.App.UpdateProduct(id, input)
	if err != nil {
		return warn(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product saved", "product": p})
}

func (ct *Controller) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := ct.App.DeleteProduct(id); err != nil {
		return warn(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted", "id": id})
}

func (ct *Controller) GetInventory(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": ct.App.Inventory()})
}
