package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"taphoa/backup"
	"taphoa/config"
	"taphoa/controllers"
	"taphoa/pos"
	"taphoa/routes"
	"taphoa/store"
)

func main() {
	cfg := config.Load()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.OpenPgStore(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open postgres store: %v", err)
		}
		defer pg.Close(context.Background())
		st = pg
	} else {
		st = store.NewFileStore(cfg.StorePath)
	}

	posApp := pos.New(pos.Options{PIN: cfg.AdminPIN, Store: st})
	bk := backup.NewClient(cfg.GCSBucket, cfg.GCSCredentialsFile)
	ct := controllers.New(posApp, cfg, bk)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins, // comma separated
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app, ct)

	log.Fatal(app.Listen(":" + cfg.Port))
}
