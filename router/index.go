package router

import (
	"restaurant_pos/constants"
	"restaurant_pos/handler"
	"restaurant_pos/middleware"
	"restaurant_pos/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	user := v1.Group("/users", logger.New())
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Post("/", middleware.Protected(), validate.CreateUser(), handler.CreateUser)
	user.Put("/:userId", middleware.Protected(), validate.UpdateUser(), handler.UpdateUser)
	user.Post("/:userId/unlock", middleware.Protected(), handler.UnlockUser)
	user.Delete("/:userId", middleware.Protected(), handler.DeactivateUser)

	location := v1.Group("/locations", logger.New())
	location.Get("/", middleware.Protected(), handler.GetLocations)
	location.Post("/", middleware.Protected(), validate.CreateLocation(), handler.CreateLocation)
	location.Put("/:locationId", middleware.Protected(), validate.UpdateLocation(), handler.UpdateLocation)
	location.Delete("/:locationId", middleware.Protected(), handler.DeleteLocation)

	table := v1.Group("/tables", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), validate.UpdateTable(), handler.UpdateTable)
	table.Get("/:tableId/qrcode", middleware.Protected(), handler.GetTableQRCode)
	table.Get("/assignments", middleware.Protected(), handler.GetTableAssignments)
	table.Post("/assignments", middleware.Protected(), validate.AssignTable(), handler.AssignTable)
	table.Delete("/assignments/:assignmentId", middleware.Protected(), handler.UnassignTable)

	menu := v1.Group("/menu", logger.New())
	menu.Get("/categories", middleware.Protected(), handler.GetCategories)
	menu.Post("/categories", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	menu.Delete("/categories/:categoryId", middleware.Protected(), handler.DeleteCategory)
	menu.Get("/items", middleware.Protected(), handler.GetMenuItems)
	menu.Get("/items/barcode/:barcode", middleware.Protected(), handler.GetMenuItemByBarcode)
	menu.Post("/items", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/items/:itemId", middleware.Protected(), validate.UpdateMenuItem(), handler.UpdateMenuItem)
	menu.Delete("/items/:itemId", middleware.Protected(), handler.DeleteMenuItem)
	menu.Post("/items/:itemId/image", middleware.Protected(), handler.UploadMenuItemImage)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	order := v1.Group("/orders", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/:orderId", middleware.Protected(), handler.GetOrderById)
	order.Put("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	order.Post("/:orderId/items", middleware.Protected(), validate.AddOrderItem(), handler.AddOrderItem)
	order.Delete("/:orderId/items/:itemId", middleware.Protected(), handler.RemoveOrderItem)

	printer := v1.Group("/printers", logger.New())
	printer.Post("/print-order/:orderId", middleware.Protected(), validate.PrintOrder(), handler.PrintOrder)
	printer.Get("/", middleware.Protected(), handler.GetPrinters)
	printer.Post("/", middleware.Protected(), validate.CreatePrinter(), handler.CreatePrinter)
	printer.Put("/:printerId", middleware.Protected(), validate.UpdatePrinter(), handler.UpdatePrinter)
	printer.Delete("/:printerId", middleware.Protected(), handler.DeletePrinter)
	printer.Post("/:printerId/test", middleware.Protected(), handler.TestPrinter)

	reservation := v1.Group("/reservations", logger.New())
	reservation.Get("/", middleware.Protected(), handler.GetReservations)
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Put("/:reservationId", middleware.Protected(), validate.UpdateReservation(), handler.UpdateReservation)
	reservation.Delete("/:reservationId", middleware.Protected(), handler.DeleteReservation)

	report := v1.Group("/reports", logger.New(), middleware.Protected(),
		middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER))
	report.Get("/sales", handler.GetSalesReport)
	report.Get("/sales/daily", handler.GetDailySalesReports)
	report.Get("/menu-performance", handler.GetMenuPerformance)
	report.Get("/order-history", handler.GetOrderHistory)

	v1.Get("/ws/:room", websocket.New(handler.WebSocketConnection))
}
