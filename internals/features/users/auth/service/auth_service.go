// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDto "iflow_backend/internals/features/users/auth/dto"
	authModel "iflow_backend/internals/features/users/auth/model"
	userModel "iflow_backend/internals/features/users/user/model"
	helper "iflow_backend/internals/helpers"
)

var validate = validator.New()

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ========================== REGISTER ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !usernamePattern.MatchString(req.Username) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username may only contain letters, numbers and underscores")
	}

	// Cek username/email sudah dipakai
	var count int64
	if err := db.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	user := userModel.UserModel{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(req.DisplayName),
	}
	if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	token, err := helper.CreateToken(user.ID, user.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, fiber.Map{
		"user":  authDto.ToUserSummary(&user),
		"token": token,
	})
}

// ========================== LOGIN ==========================
// Login menerima username ATAU email di field yang sama.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	err := db.WithContext(c.Context()).
		Where("username = ? OR email = ?", req.Username, strings.ToLower(req.Username)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	if err := db.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Update("last_login_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := helper.CreateToken(user.ID, user.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, fiber.Map{
		"user":  authDto.ToUserSummary(&user),
		"token": token,
	})
}

// ========================== VERIFY ==========================
// Verify dipakai frontend saat boot: token → user aktif.
func Verify(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := db.WithContext(c.Context()).
		First(&user, "id = ? AND is_active = true", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	return helper.JsonOK(c, fiber.Map{"user": authDto.ToUserSummary(&user)})
}

// ========================== LOGOUT ==========================
// Logout memasukkan token ke blacklist sampai exp-nya lewat.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	h := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}
	tokenString := strings.TrimSpace(parts[1])

	// Ambil exp dari klaim (tanpa verifikasi — middleware sudah memverifikasi)
	expiredAt := time.Now().Add(helper.TokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklistModel{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.WithContext(c.Context()).Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist → tetap sukses
		if !isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}

	return helper.JsonMessage(c, "Logged out successfully")
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
