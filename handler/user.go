package handler

import (
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetUsers(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	query := database.DB.Preload("Location")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err == nil {
		query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)
	}

	var users []model.User
	if err := query.Order("id asc").Find(&users).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateUser").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	// Manager không được tạo admin
	_, _, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if input.Role == constants.ROLE_ADMIN && !isAdmin {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN, nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   hashed,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       input.Role,
		LocationID: input.LocationID,
		Active:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func UpdateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateUser").(model.UpdateUserInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var user model.User
	if err := database.DB.First(&user, c.Params("userId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "User not found", err)
	}

	_, _, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if (user.Role == constants.ROLE_ADMIN || (input.Role != nil && *input.Role == constants.ROLE_ADMIN)) && !isAdmin {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN, nil)
	}

	if err := copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// UnlockUser gỡ khoá sớm cho tài khoản bị khoá do nhập sai mật khẩu
func UnlockUser(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var user model.User
	if err := database.DB.First(&user, c.Params("userId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "User not found", err)
	}

	user.LockedUntil = nil
	user.FailedLoginAttempts = 0
	if err := database.DB.Model(&user).Select("locked_until", "failed_login_attempts").Updates(&user).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Account unlocked"})
}

func DeactivateUser(c *fiber.Ctx) error {
	_, _, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN, nil)
	}

	var user model.User
	if err := database.DB.First(&user, c.Params("userId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "User not found", err)
	}

	if err := database.DB.Model(&user).Update("active", false).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	// Hết hiệu lực mọi phiên cũ
	database.DB.Where("user_id = ?", user.ID).Delete(&model.RefreshToken{})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Account deactivated"})
}
