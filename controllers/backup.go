package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"taphoa/backup"
)

// CloudBackup uploads the current snapshot as Backup_<date>.json. The
// snapshot is copied under the state lock and uploaded outside it, so
// the POS stays responsive while the upload is in flight. Two
// concurrent requests mean two uploads; nobody de-duplicates them.
func (ct *Controller) CloudBackup(c *fiber.Ctx) error {
	if ct.Backup == nil || !ct.Backup.Configured() {
		return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
			"error":      backup.ErrNotConfigured.Error(),
			"suggestion": "use GET /export/excel for a local backup instead",
		})
	}

	snap := ct.App.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	name := fmt.Sprintf("Backup_%s.json", time.Now().Format("2006-01-02"))
	if err := ct.Backup.Upload(c.Context(), name, data); err != nil {
		if errors.Is(err, backup.ErrNotConfigured) {
			return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{
				"error":      err.Error(),
				"suggestion": "use GET /export/excel for a local backup instead",
			})
		}
		log.Printf("cloud backup failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Backup uploaded", "object": name})
}
