package dto

import (
	"time"

	"github.com/lancarbooks/lancar_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user (admin only).
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN STAFF"`
}

// UpdateUserRequest updates a user's profile attributes.
type UpdateUserRequest struct {
	Name  *string          `json:"name"`
	Email *string          `json:"email" binding:"omitempty,email"`
	Role  *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN STAFF"`
}

// SetUserActiveRequest toggles the active flag; users are never deleted.
type SetUserActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ChangePasswordRequest changes the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          domain.UserRole `json:"role"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
