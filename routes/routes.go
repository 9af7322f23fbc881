package routes

import (
	"github.com/gofiber/fiber/v2"

	"taphoa/controllers"
	"taphoa/middleware"
)

func RegisterRoutes(app *fiber.App, ct *controllers.Controller) {

	// catalog
	app.Get("/products", ct.GetProducts)
	app.Get("/categories", ct.GetCategories)
	app.Post("/categories/select", ct.SelectCategory)

	// cart + checkout
	app.Get("/cart", ct.GetCart)
	app.Post("/cart/items", ct.AddCartItem)
	app.Patch("/cart/items/:index", ct.UpdateCartItem)
	app.Delete("/cart", ct.ClearCart)
	app.Post("/checkout", ct.Checkout)

	// admin gate
	app.Post("/admin/pin", ct.EnterPinDigit)
	app.Delete("/admin/pin", ct.ClearPin)
	app.Post("/admin/toggle", ct.ToggleAdmin)

	// inventory management (gated)
	admin := middleware.AdminRequired(ct.App, ct.Cfg.TokenSecret)
	app.Get("/inventory", admin, ct.GetInventory)
	app.Post("/products", admin, ct.CreateProduct)
	app.Put("/products/:id", admin, ct.UpdateProduct)
	app.Delete("/products/:id", admin, ct.DeleteProduct)

	// reports + navigation
	app.Get("/reports", ct.GetReports)
	app.Post("/view", ct.SwitchView)

	// backups
	app.Get("/export/excel", ct.ExportExcel)
	app.Post("/backup/cloud", ct.CloudBackup)
}
