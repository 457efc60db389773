package dto

import (
	"time"

	"github.com/google/uuid"

	"simaset_backend/internals/features/users/model"
)

type RegisterRequest struct {
	NIP      string `json:"nip" validate:"required,min=8,max=30"`
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	NIP       string    `json:"nip"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		NIP:       m.UserNIP,
		Name:      m.UserName,
		Email:     m.UserEmail,
		Role:      m.UserRole,
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt,
	}
}
