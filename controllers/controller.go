package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taphoa/backup"
	"taphoa/config"
	"taphoa/pos"
)

type Controller struct {
	App    *pos.App
	Cfg    config.Config
	Backup *backup.Client
}

func New(app *pos.App, cfg config.Config, bk *backup.Client) *Controller {
	return &Controller{App: app, Cfg: cfg, Backup: bk}
}

// warn maps core conditions onto HTTP statuses. These are notices, not
// failures: state is unchanged and the client just shows the message.
func warn(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, pos.ErrProductNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, pos.ErrOutOfStock), errors.Is(err, pos.ErrStockLimit):
		status = fiber.StatusConflict
	case errors.Is(err, pos.ErrWrongPin):
		status = fiber.StatusUnauthorized
	case errors.Is(err, pos.ErrLocked):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":     err.Error(),
			"challenge": true,
		})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
