package validate

import (
	"errors"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput
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

		// Username đã tồn tại
		var count int64
		database.DB.Model(&model.User{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_VALIDATION_ERROR, "Username already exists", nil)
		}

		database.DB.Model(&model.User{}).Where("email = ?", input.Email).Count(&count)
		if count > 0 {
			return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_VALIDATION_ERROR, "Email already exists", nil)
		}

		c.Locals("inputCreateUser", input)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateUserInput
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

		c.Locals("inputUpdateUser", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangePasswordInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", err)
		}

		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "New password does not match repeat password", errors.New("newPassword not same repeatPassword"))
		}

		c.Locals("inputChangePassword", input)
		return c.Next()
	}
}
