package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"time"

	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByUsername(u string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Preload("Location").Where("username = ?", u).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	jti := uuid.NewString()

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["username"] = tokenClaim.Username
	claims["role"] = tokenClaim.Role
	claims["jti"] = jti
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, jti, err
}

func GenerateRefreshToken(user *model.User) (string, error) {
	raw := uuid.NewString() + uuid.NewString()
	refresh := model.RefreshToken{
		UserID:    user.ID,
		Token:     raw,
		ExpiresAt: time.Now().Add(time.Hour * 24 * 7),
	}
	if err := database.DB.Create(&refresh).Error; err != nil {
		return "", err
	}
	return raw, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})
	return token, err
}

// GetInfoUserFromToken đọc claim từ Locals, trả về user hiện tại kèm cờ quyền
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, false, false
	}
	mapClaims := token.Claims.(jwt.MapClaims)
	userId := uint(mapClaims["userId"].(float64))
	username, _ := mapClaims["username"].(string)
	jti, _ := mapClaims["jti"].(string)

	var user model.User
	db := database.DB
	if err := db.Preload("Location").First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("User not found: id=%d", userId)
		} else {
			log.Printf("Database query error for user: id=%d, error=%v", userId, err)
		}
		return model.TokenClaim{}, nil, false, false
	}

	claim := model.TokenClaim{
		UserId:   userId,
		Username: username,
		Role:     user.Role,
		Jti:      jti,
	}

	return claim,
		&user,
		user.Role == constants.ROLE_ADMIN,
		user.Role == constants.ROLE_MANAGER
}
