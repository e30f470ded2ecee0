package validate

import (
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput
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

		var count int64
		database.DB.Model(&model.Location{}).Where("id = ? AND active = ?", input.LocationID, true).Count(&count)
		if count == 0 {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.LOCATION_NOT_FOUND, nil)
		}

		// Trùng số bàn trong cùng location
		database.DB.Model(&model.Table{}).Where("table_number = ? AND location_id = ?", input.TableNumber, input.LocationID).Count(&count)
		if count > 0 {
			return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_VALIDATION_ERROR, "Table number already exists at this location", nil)
		}

		c.Locals("inputCreateTable", input)
		return c.Next()
	}
}

func UpdateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		c.Locals("inputUpdateTable", input)
		return c.Next()
	}
}

func AssignTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignTableInput
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

		c.Locals("inputAssignTable", input)
		return c.Next()
	}
}
