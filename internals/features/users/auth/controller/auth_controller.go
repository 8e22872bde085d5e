package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/users/auth/dto"
	"storeadmin_backend/internals/features/users/auth/model"
	"storeadmin_backend/internals/features/users/auth/service"
	helper "storeadmin_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var admin model.AdminModel
	if err := ctrl.DB.Where("lower(admin_email) = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up admin")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, _, err := service.IssueToken(admin.AdminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminDTO(admin),
	})
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token supplied")
	}

	expiredAt, _ := c.Locals("token_expires_at").(time.Time)
	if expiredAt.IsZero() {
		expiredAt = time.Now().Add(24 * time.Hour)
	}

	entry := model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// Unique violation means the token was already revoked.
		if !strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
		}
	}

	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID, _ := c.Locals("admin_id").(string)
	if adminID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not logged in")
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}
	return helper.JsonOK(c, "", dto.ToAdminDTO(admin))
}
