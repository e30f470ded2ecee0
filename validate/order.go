package validate

import (
	"restaurant_pos/constants"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if input.OrderType == "" {
			input.OrderType = constants.ORDER_TYPE_DINE_IN
		}

		if len(input.Items) == 0 {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.ORDER_ITEMS_REQUIRED, nil)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		c.Locals("inputCreateOrder", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if input.Status == "" {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Status is required", nil)
		}

		c.Locals("inputUpdateOrderStatus", input)
		return c.Next()
	}
}

func AddOrderItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OrderItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Menu item ID and quantity are required", err)
		}

		c.Locals("inputAddOrderItem", input)
		return c.Next()
	}
}
