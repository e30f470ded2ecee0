package validate

import (
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateLocationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		_, _, isAdmin, _ := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN, nil)
		}

		var count int64
		database.DB.Model(&model.Location{}).Where("name = ?", input.Name).Count(&count)
		if count > 0 {
			return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_VALIDATION_ERROR, "Location name already exists", nil)
		}

		c.Locals("inputCreateLocation", input)
		return c.Next()
	}
}

func UpdateLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateLocationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		_, _, isAdmin, _ := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN, nil)
		}

		c.Locals("inputUpdateLocation", input)
		return c.Next()
	}
}
