package handler

import (
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 30 * time.Minute
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

func Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.MISSING_LOGIN_INPUT, err)
	}
	if input.Username == "" || input.Password == "" {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.MISSING_LOGIN_INPUT, nil)
	}

	user, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, nil)
	}

	if !user.Active {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.ACCOUNT_NOT_ACTIVE, nil)
	}
	if user.IsLocked() {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.ACCOUNT_LOCKED, nil)
	}

	if !helper.CheckPasswordHash(input.Password, user.Password) {
		// Sai liên tiếp 5 lần thì khoá 30 phút
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= maxFailedLogins {
			lockedUntil := time.Now().Add(lockoutDuration)
			user.LockedUntil = &lockedUntil
			user.FailedLoginAttempts = 0
		}
		database.DB.Model(user).Select("failed_login_attempts", "locked_until").Updates(user)
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, nil)
	}

	now := time.Now()
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLogin = &now
	database.DB.Model(user).Select("failed_login_attempts", "locked_until", "last_login").Updates(user)

	accessToken, _, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(user)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(8 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"fullName":   user.FullName(),
			"role":       user.Role,
			"locationId": user.LocationID,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	var input RefreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Refresh token is required", err)
	}

	var refresh model.RefreshToken
	if err := database.DB.Preload("User").Where("token = ?", input.RefreshToken).First(&refresh).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}
	if refresh.IsExpired() {
		database.DB.Delete(&refresh)
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token expired", nil)
	}

	user := refresh.User
	if !user.Active || user.IsLocked() {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.ACCOUNT_NOT_ACTIVE, nil)
	}

	accessToken, _, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken": accessToken,
	})
}

func Logout(c *fiber.Ctx) error {
	// Thu hồi JTI của access token hiện tại cho đến khi nó hết hạn
	if token, ok := c.Locals("user").(*jwt.Token); ok && token != nil {
		claims := token.Claims.(jwt.MapClaims)
		if jti, ok := claims["jti"].(string); ok && jti != "" {
			ttl := 8 * time.Hour
			if exp, ok := claims["exp"].(float64); ok {
				if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
					ttl = remaining
				}
			}
			helper.RevokeToken(jti, ttl)
		}
		if userId, ok := claims["userId"].(float64); ok {
			database.DB.Where("user_id = ?", uint(userId)).Delete(&model.RefreshToken{})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Logged out"})
}

func Me(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"fullName":   user.FullName(),
		"role":       user.Role,
		"locationId": user.LocationID,
		"location":   user.Location,
		"lastLogin":  user.LastLogin,
	})
}

func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect", nil)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đổi mật khẩu thì các refresh token cũ mất hiệu lực
	database.DB.Where("user_id = ?", user.ID).Delete(&model.RefreshToken{})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password changed"})
}
