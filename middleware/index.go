package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/helper"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		// Token đã logout thì từ chối dù chữ ký còn hợp lệ
		if claims, ok := jwtToken.Claims.(jwt.MapClaims); ok {
			if jti, _ := claims["jti"].(string); helper.IsTokenRevoked(jti) {
				return utils.ErrorResponse(c, 401, "Token has been revoked", errors.New("revoked token"))
			}
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireRoles chặn theo role, dùng sau Protected()
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, user, _, _ := helper.GetInfoUserFromToken(c)
		if user == nil {
			return utils.ErrorResponse(c, 401, "Invalid token", errors.New("user not found"))
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return utils.ErrorResponseCode(c, 403, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, errors.New("role "+user.Role+" not allowed"))
	}
}

// RateLimiter bật qua config, mặc định no-op để môi trường dev không cần
func RateLimiter() fiber.Handler {
	if config.Config("RATE_LIMIT_ENABLED") != "true" {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	max := 100
	if v, err := strconv.Atoi(config.Config("RATE_LIMIT_MAX")); err == nil && v > 0 {
		max = v
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
	})
}
