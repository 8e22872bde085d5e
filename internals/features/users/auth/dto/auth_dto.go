package dto

import (
	"time"

	"storeadmin_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminDTO struct {
	AdminID        string    `json:"admin_id"`
	AdminName      string    `json:"admin_name"`
	AdminEmail     string    `json:"admin_email"`
	AdminIsActive  bool      `json:"admin_is_active"`
	AdminCreatedAt time.Time `json:"admin_created_at"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

func ToAdminDTO(m model.AdminModel) AdminDTO {
	return AdminDTO{
		AdminID:        m.AdminID,
		AdminName:      m.AdminName,
		AdminEmail:     m.AdminEmail,
		AdminIsActive:  m.AdminIsActive,
		AdminCreatedAt: m.AdminCreatedAt,
	}
}
