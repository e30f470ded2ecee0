package validate

import (
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
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

		c.Locals("inputCreateCategory", input)
		return c.Next()
	}
}

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
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
		database.DB.Model(&model.Category{}).Where("id = ?", input.CategoryID).Count(&count)
		if count == 0 {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid category ID", nil)
		}

		c.Locals("inputCreateMenuItem", input)
		return c.Next()
	}
}

func UpdateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateMenuItemInput
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

		c.Locals("inputUpdateMenuItem", input)
		return c.Next()
	}
}
