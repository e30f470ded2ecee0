package validate

import (
	"restaurant_pos/constants"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePrinter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePrinterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
		}

		c.Locals("inputCreatePrinter", input)
		return c.Next()
	}
}

func UpdatePrinter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePrinterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
		}

		c.Locals("inputUpdatePrinter", input)
		return c.Next()
	}
}

func PrintOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PrintOrderInput
		// Body rỗng nghĩa là in tất cả
		if err := c.BodyParser(&input); err != nil {
			input = model.PrintOrderInput{}
		}

		if input.PrinterType == "" {
			input.PrinterType = "all"
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid printer type", err)
		}

		c.Locals("inputPrintOrder", input)
		return c.Next()
	}
}
