package validate

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant_pos/constants"
	"restaurant_pos/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/orders", CreateOrder(), func(c *fiber.Ctx) error {
		input := c.Locals("inputCreateOrder").(model.CreateOrderInput)
		return c.JSON(fiber.Map{"orderType": input.OrderType})
	})
	app.Patch("/orders/status", UpdateOrderStatus(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestCreateOrderValidation(t *testing.T) {
	app := newOrderTestApp()

	t.Run("thiếu items", func(t *testing.T) {
		resp, body := postJSON(t, app, "POST", "/orders", `{"orderType":"dine_in","items":[]}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, constants.ORDER_ITEMS_REQUIRED)
		assert.Contains(t, body, constants.CODE_VALIDATION_ERROR)
	})

	t.Run("orderType lạ", func(t *testing.T) {
		resp, body := postJSON(t, app, "POST", "/orders",
			`{"orderType":"drive_thru","items":[{"menuItemId":1,"quantity":1}]}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, constants.CODE_VALIDATION_ERROR)
	})

	t.Run("quantity bằng 0", func(t *testing.T) {
		resp, _ := postJSON(t, app, "POST", "/orders",
			`{"items":[{"menuItemId":1,"quantity":0}]}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("discount âm", func(t *testing.T) {
		resp, _ := postJSON(t, app, "POST", "/orders",
			`{"items":[{"menuItemId":1,"quantity":1}],"discountAmount":-5}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("không truyền orderType mặc định dine_in", func(t *testing.T) {
		resp, body := postJSON(t, app, "POST", "/orders",
			`{"items":[{"menuItemId":1,"quantity":2}]}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, constants.ORDER_TYPE_DINE_IN)
	})

	t.Run("unitPrice override hợp lệ", func(t *testing.T) {
		resp, _ := postJSON(t, app, "POST", "/orders",
			`{"orderType":"takeaway","items":[{"menuItemId":1,"quantity":1,"unitPrice":3.25}]}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	app := newOrderTestApp()

	resp, _ := postJSON(t, app, "PATCH", "/orders/status", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = postJSON(t, app, "PATCH", "/orders/status", `{"status":"confirmed"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
