package router

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	want := []struct{ method, path string }{
		{"GET", "/health"},
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/orders"},
		{"PUT", "/api/v1/orders/:orderId/status"},
		{"POST", "/api/v1/orders/:orderId/items"},
		{"DELETE", "/api/v1/orders/:orderId/items/:itemId"},
		{"POST", "/api/v1/printers/print-order/:orderId"},
		{"DELETE", "/api/v1/tables/assignments/:assignmentId"},
		{"GET", "/api/v1/reports/sales"},
	}

	routes := app.GetRoutes()
	for _, w := range want {
		found := false
		for _, r := range routes {
			if r.Method == w.method && r.Path == w.path {
				found = true
				break
			}
		}
		assert.True(t, found, "missing route %s %s", w.method, w.path)
	}
}
